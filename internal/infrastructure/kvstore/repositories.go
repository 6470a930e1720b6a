package kvstore

import "github.com/jhoicas/intellicollect-api/internal/domain/repository"

// Repositories construye todos los repositorios sobre el mismo store.
func Repositories(store *Store) repository.Set {
	return repository.Set{
		Customers:      NewCustomerRepo(store),
		Invoices:       NewInvoiceRepo(store),
		Payments:       NewPaymentRepo(store),
		Communications: NewCommunicationRepo(store),
		RevenueTrend:   NewRevenueTrendRepo(store),
	}
}
