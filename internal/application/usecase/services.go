// Package usecase reúne los casos de uso de la aplicación en un único contenedor que
// comparten el servidor HTTP y la fachada mockapi.
package usecase

import (
	"github.com/jhoicas/intellicollect-api/internal/application/analytics"
	"github.com/jhoicas/intellicollect-api/internal/application/billing"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
)

// Services casos de uso construidos sobre un mismo conjunto de repositorios.
type Services struct {
	Customers      *billing.CustomerUseCase
	Invoices       *billing.InvoiceUseCase
	Payments       *billing.PaymentUseCase
	Communications *billing.CommunicationUseCase
	InvoicePDF     *billing.PDFUseCase
	Analytics      *analytics.AnalyticsUseCase
}

// NewServices inyecta repositorios, validador y generador de PDF en cada caso de uso.
func NewServices(repos repository.Set, pdf billing.InvoicePDFGenerator) *Services {
	v := validation.New()
	return &Services{
		Customers:      billing.NewCustomerUseCase(repos.Customers, repos.Invoices, v),
		Invoices:       billing.NewInvoiceUseCase(repos.Invoices, repos.Customers, repos.Communications, v),
		Payments:       billing.NewPaymentUseCase(repos.Payments, repos.Invoices, repos.Customers, v),
		Communications: billing.NewCommunicationUseCase(repos.Communications, repos.Customers, v),
		InvoicePDF:     billing.NewPDFUseCase(repos.Invoices, repos.Customers, repos.Payments, pdf),
		Analytics: analytics.NewAnalyticsUseCase(
			repos.Customers, repos.Invoices, repos.Payments, repos.RevenueTrend, v,
		),
	}
}
