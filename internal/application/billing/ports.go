package billing

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación PDF de una factura.
// La implementación vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, customer *entity.Customer, payments []entity.Payment) ([]byte, error)
}
