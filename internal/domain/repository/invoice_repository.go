package repository

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Toda mutación recalcula los agregados del cliente dueño en la misma escritura.
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, inv *entity.Invoice) error
	Update(ctx context.Context, id string, patch entity.InvoicePatch) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
	// RegisterReminder incrementa el contador de recordatorios y marca la fecha;
	// una factura en borrador pasa a enviada.
	RegisterReminder(ctx context.Context, id string, on entity.Date) (*entity.Invoice, error)
}
