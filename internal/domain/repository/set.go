package repository

// Set agrupa los repositorios de un mismo backend.
type Set struct {
	Customers      CustomerRepository
	Invoices       InvoiceRepository
	Payments       PaymentRepository
	Communications CommunicationRepository
	RevenueTrend   RevenueTrendRepository
}
