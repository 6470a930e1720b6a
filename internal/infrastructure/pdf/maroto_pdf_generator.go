// Package pdf genera el PDF de una factura de cartera con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor               │  N° Factura + Fechas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + empresa + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IMPORTES: Monto | Total | Pagado | Saldo                    │
//	│  ESTADO: estado + estado de pago + recordatorios             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS DEL CLIENTE: Fecha | Referencia | Medio | Importe     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de referencia + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const dateLayout = "02 Jan 2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador; issuer es el nombre que encabeza el documento.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: nonEmpty(issuer, "IntelliCollect")}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	ctx context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	payments []entity.Payment,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.issuer, invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(amountsRows(invoice)...)
	m.AddRows(statusRow(invoice))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(paymentRows(payments)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y N° factura + fechas (der).
func headerRow(issuer string, invoice *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Accounts receivable", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Issued: "+invoice.InvoiceDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Due: "+invoice.DueDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   Email: %s   |   Tel: %s",
				nonEmpty(customer.Company, "-"),
				nonEmpty(customer.Email, "-"),
				nonEmpty(customer.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// amountsRows: cabecera y valores de importes.
func amountsRows(invoice *entity.Invoice) []core.Row {
	h := func(label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		}))
	}
	v := func(s string, c *props.Color) core.Col {
		return col.New(3).Add(text.New(s, props.Text{
			Size: 10, Align: align.Right, Top: 1, Right: 1, Color: c,
		}))
	}
	outstandingColor := colorPrimary
	if invoice.OutstandingAmount.IsPositive() {
		outstandingColor = colorAlert
	}
	return []core.Row{
		row.New(8).Add(h("Amount"), h("Total"), h("Paid"), h("Outstanding")),
		row.New(8).Add(
			v(money.Format(invoice.Amount, invoice.Currency), nil),
			v(money.Format(invoice.TotalAmount, invoice.Currency), nil),
			v(money.Format(invoice.PaidAmount, invoice.Currency), nil),
			v(money.Format(invoice.OutstandingAmount, invoice.Currency), outstandingColor),
		),
	}
}

// statusRow: estados de la factura y recordatorios enviados.
func statusRow(invoice *entity.Invoice) core.Row {
	status := fmt.Sprintf("Status: %s   |   Payment: %s   |   Reminders sent: %d",
		invoice.Status, invoice.PaymentStatus, invoice.ReminderCount)
	if invoice.PaymentDate != nil {
		status += "   |   Paid on: " + invoice.PaymentDate.Format(dateLayout)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(status, props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// paymentRows: pagos registrados del cliente (el libro no los asocia a facturas).
func paymentRows(payments []entity.Payment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("CUSTOMER PAYMENTS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(payments) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("No payments recorded.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}

	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows = append(rows, row.New(6).Add(
		h("Date", 3, align.Left),
		h("Reference", 4, align.Left),
		h("Method", 2, align.Left),
		h("Amount", 3, align.Right),
	))
	for _, p := range payments {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(p.TransactionDate.Format(dateLayout), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.ReferenceNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.TransactionType, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money.Format(p.Amount, p.Currency), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// footerRow: QR con la referencia de cobro y leyenda.
func footerRow(invoice *entity.Invoice) core.Row {
	ref := fmt.Sprintf("invoice=%s;customer=%s;outstanding=%s;currency=%s",
		invoice.InvoiceID, invoice.CustomerID, invoice.OutstandingAmount.StringFixed(2), invoice.Currency)
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Please include the invoice number as your payment reference.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Thank you for your business.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 16, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
