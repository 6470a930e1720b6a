package kvstore

import (
	"context"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/pkg/idgen"
)

const defaultInvoiceRiskScore = 10

// InvoiceRepo implementa repository.InvoiceRepository. Cada mutación guarda la
// colección de facturas y los agregados del cliente en la misma transacción.
type InvoiceRepo struct {
	col collection[entity.Invoice]
}

// NewInvoiceRepo construye el repositorio de facturas.
func NewInvoiceRepo(store *Store) *InvoiceRepo {
	return &InvoiceRepo{col: collection[entity.Invoice]{
		store: store,
		kind:  KindInvoices,
		id:    func(i *entity.Invoice) string { return i.InvoiceID },
	}}
}

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	return r.col.list(ctx)
}

func (r *InvoiceRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Invoice, error) {
	return r.col.filter(ctx, func(i *entity.Invoice) bool { return i.CustomerID == customerID })
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.col.get(ctx, id)
}

// Create completa los valores por defecto, guarda la factura y recalcula el cliente.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.InvoiceID == "" {
		inv.InvoiceID = idgen.New("inv")
	}
	if inv.Currency == "" {
		inv.Currency = entity.DefaultCurrency
	}
	if inv.Status == "" {
		inv.Status = entity.InvoiceDraft
	}
	if inv.PaymentStatus == "" {
		inv.PaymentStatus = entity.PaymentUnpaid
	}
	if inv.TotalAmount.IsZero() {
		inv.TotalAmount = inv.Amount
	}
	inv.RiskLevel = entity.RiskLow
	inv.RiskScore = defaultInvoiceRiskScore
	inv.CreatedTimestamp = time.Now().UTC()
	inv.ReminderCount = 0
	if inv.PaymentStatus == entity.PaymentPaid {
		markPaid(inv)
	}
	inv.RecomputeOutstanding()

	return r.col.store.Update(ctx, func(tx *Tx) error {
		invoices := append(Load[entity.Invoice](tx, KindInvoices), *inv)
		if err := Save(tx, KindInvoices, invoices); err != nil {
			return err
		}
		return refreshOwners(tx, invoices, inv.CustomerID)
	})
}

// Update mezcla el patch; payment_status=paid liquida la factura completa.
// Se recalculan el cliente anterior y el nuevo si la factura cambió de dueño.
func (r *InvoiceRepo) Update(ctx context.Context, id string, patch entity.InvoicePatch) (*entity.Invoice, error) {
	var updated *entity.Invoice
	err := r.col.store.Update(ctx, func(tx *Tx) error {
		invoices := Load[entity.Invoice](tx, KindInvoices)
		i := indexOf(invoices, r.col.id, id)
		if i < 0 {
			return nil
		}
		inv := &invoices[i]
		previousOwner := inv.CustomerID

		patch.Apply(inv)
		if patch.PaymentStatus != nil && *patch.PaymentStatus == entity.PaymentPaid {
			markPaid(inv)
		}
		inv.RecomputeOutstanding()

		if err := Save(tx, KindInvoices, invoices); err != nil {
			return err
		}
		out := *inv
		updated = &out
		return refreshOwners(tx, invoices, previousOwner, inv.CustomerID)
	})
	return updated, err
}

// Delete borra la factura y recalcula a su cliente.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.col.store.Update(ctx, func(tx *Tx) error {
		invoices := Load[entity.Invoice](tx, KindInvoices)
		i := indexOf(invoices, r.col.id, id)
		if i < 0 {
			return nil
		}
		owner := invoices[i].CustomerID
		invoices = append(invoices[:i], invoices[i+1:]...)
		if err := Save(tx, KindInvoices, invoices); err != nil {
			return err
		}
		removed = true
		return refreshOwners(tx, invoices, owner)
	})
	return removed, err
}

func (r *InvoiceRepo) RegisterReminder(ctx context.Context, id string, on entity.Date) (*entity.Invoice, error) {
	return r.col.modify(ctx, id, func(inv *entity.Invoice) {
		inv.ReminderCount++
		inv.LastReminderDate = entity.DatePtr(on)
		if inv.Status == entity.InvoiceDraft {
			inv.Status = entity.InvoiceSent
		}
	})
}

// markPaid liquida la factura: pagado = total, fecha de pago hoy y referencia nueva.
func markPaid(inv *entity.Invoice) {
	inv.PaidAmount = inv.TotalAmount
	inv.PaymentDate = entity.DatePtr(entity.Today())
	inv.PaymentReference = idgen.New("pay")
}
