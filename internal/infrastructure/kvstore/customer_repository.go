package kvstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/pkg/idgen"
)

// NewCustomerHistory historial por defecto de un cliente recién creado.
const NewCustomerHistory = "New customer - no payment history"

// CustomerRepo implementa repository.CustomerRepository.
type CustomerRepo struct {
	col collection[entity.Customer]
}

// NewCustomerRepo construye el repositorio de clientes.
func NewCustomerRepo(store *Store) *CustomerRepo {
	return &CustomerRepo{col: collection[entity.Customer]{
		store: store,
		kind:  KindCustomers,
		id:    func(c *entity.Customer) string { return c.ID },
	}}
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	return r.col.list(ctx)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.col.get(ctx, id)
}

// Create asigna id, estado activo, riesgo bajo y agregados en cero.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = idgen.New("cust")
	}
	if c.Status == "" {
		c.Status = entity.CustomerActive
	}
	if c.RiskLevel == entity.RiskUnset {
		c.RiskLevel = entity.RiskLow
	}
	if c.CreatedDate.IsZero() {
		c.CreatedDate = entity.NewDate(now)
	}
	if c.PaymentHistory == "" {
		c.PaymentHistory = NewCustomerHistory
	}
	c.TotalInvoices = 0
	c.OutstandingAmount = decimal.Zero
	c.CreatedAt = now
	c.UpdatedAt = now
	return r.col.insert(ctx, *c)
}

// Update mezcla el patch y refresca updated_at.
func (r *CustomerRepo) Update(ctx context.Context, id string, patch entity.CustomerPatch) (*entity.Customer, error) {
	return r.col.modify(ctx, id, func(c *entity.Customer) {
		patch.Apply(c)
		c.UpdatedAt = time.Now().UTC()
	})
}

// Delete borra solo el cliente; sus facturas se conservan.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.remove(ctx, id)
}
