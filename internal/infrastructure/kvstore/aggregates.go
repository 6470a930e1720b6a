package kvstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// RefreshAggregates recalcula total_invoices y outstanding_amount de los clientes
// indicados recorriendo todas sus facturas. Los clientes que cambian reciben un
// updated_at nuevo. Devuelve true si alguno cambió.
func RefreshAggregates(customers []entity.Customer, invoices []entity.Invoice, customerIDs ...string) bool {
	changed := false
	now := time.Now().UTC()
	for _, id := range customerIDs {
		if id == "" {
			continue
		}
		idx := indexOf(customers, func(c *entity.Customer) string { return c.ID }, id)
		if idx < 0 {
			continue
		}
		count, outstanding := 0, decimal.Zero
		for i := range invoices {
			if invoices[i].CustomerID == id {
				count++
				outstanding = outstanding.Add(invoices[i].OutstandingAmount)
			}
		}
		c := &customers[idx]
		if c.TotalInvoices != count || !c.OutstandingAmount.Equal(outstanding) {
			c.TotalInvoices = count
			c.OutstandingAmount = outstanding
			c.UpdatedAt = now
			changed = true
		}
	}
	return changed
}

// refreshOwners recalcula los agregados de los clientes y persiste si hubo cambios.
func refreshOwners(tx *Tx, invoices []entity.Invoice, customerIDs ...string) error {
	customers := Load[entity.Customer](tx, KindCustomers)
	if !RefreshAggregates(customers, invoices, customerIDs...) {
		return nil
	}
	return Save(tx, KindCustomers, customers)
}
