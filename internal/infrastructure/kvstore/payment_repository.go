package kvstore

import (
	"context"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/pkg/idgen"
)

// PaymentRepo implementa repository.PaymentRepository.
type PaymentRepo struct {
	col collection[entity.Payment]
}

// NewPaymentRepo construye el repositorio de pagos.
func NewPaymentRepo(store *Store) *PaymentRepo {
	return &PaymentRepo{col: collection[entity.Payment]{
		store: store,
		kind:  KindPayments,
		id:    func(p *entity.Payment) string { return p.ID },
	}}
}

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

func (r *PaymentRepo) List(ctx context.Context) ([]entity.Payment, error) {
	return r.col.list(ctx)
}

func (r *PaymentRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Payment, error) {
	return r.col.filter(ctx, func(p *entity.Payment) bool { return p.CustomerID == customerID })
}

func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return r.col.get(ctx, id)
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = idgen.New("pay")
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.col.insert(ctx, *p)
}

func (r *PaymentRepo) Update(ctx context.Context, id string, patch entity.PaymentPatch) (*entity.Payment, error) {
	return r.col.modify(ctx, id, func(p *entity.Payment) {
		patch.Apply(p)
		p.UpdatedAt = time.Now().UTC()
	})
}

func (r *PaymentRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.remove(ctx, id)
}
