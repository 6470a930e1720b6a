package kvstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
)

type repos struct {
	customers *kvstore.CustomerRepo
	invoices  *kvstore.InvoiceRepo
	payments  *kvstore.PaymentRepo
	comms     *kvstore.CommunicationRepo
}

func newRepos(t *testing.T) repos {
	store := newStore(t)
	return repos{
		customers: kvstore.NewCustomerRepo(store),
		invoices:  kvstore.NewInvoiceRepo(store),
		payments:  kvstore.NewPaymentRepo(store),
		comms:     kvstore.NewCommunicationRepo(store),
	}
}

func createCustomer(t *testing.T, r repos, name string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, Email: name + "@example.com"}
	require.NoError(t, r.customers.Create(context.Background(), c))
	return c
}

func createInvoice(t *testing.T, r repos, customerID string, total int64) *entity.Invoice {
	t.Helper()
	inv := &entity.Invoice{
		CustomerID:  customerID,
		InvoiceDate: entity.MustDate("2024-09-01"),
		DueDate:     entity.MustDate("2024-09-30"),
		Amount:      decimal.NewFromInt(total),
	}
	require.NoError(t, r.invoices.Create(context.Background(), inv))
	return inv
}

// assertAggregates comprueba que los agregados del cliente coinciden con sus facturas.
func assertAggregates(t *testing.T, r repos, customerID string) {
	t.Helper()
	ctx := context.Background()
	c, err := r.customers.GetByID(ctx, customerID)
	require.NoError(t, err)
	require.NotNil(t, c)

	invs, err := r.invoices.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, inv := range invs {
		sum = sum.Add(inv.OutstandingAmount)
	}
	assert.Equal(t, len(invs), c.TotalInvoices, "total_invoices")
	assert.True(t, sum.Equal(c.OutstandingAmount), "outstanding %s != %s", c.OutstandingAmount, sum)
}

// ─────────────────────────────────────────────────────────────────────────────
// Customers
// ─────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_CreateFillsDefaults(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, entity.CustomerActive, c.Status)
	assert.Equal(t, entity.RiskLow, c.RiskLevel)
	assert.Equal(t, 0, c.TotalInvoices)
	assert.True(t, c.OutstandingAmount.IsZero())
	assert.Equal(t, kvstore.NewCustomerHistory, c.PaymentHistory)
	assert.Equal(t, entity.Today(), c.CreatedDate)
}

func TestCustomerRepo_UnknownIDSignalsNotFound(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	got, err := r.customers.GetByID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := r.customers.Update(ctx, "does-not-exist", entity.CustomerPatch{Name: entity.Ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := r.customers.Delete(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCustomerRepo_UpdateMergesAndRefreshesTimestamp(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")

	updated, err := r.customers.Update(context.Background(), c.ID, entity.CustomerPatch{
		Phone:     entity.Ptr("+1 555 0100"),
		RiskLevel: entity.Ptr(entity.RiskHigh),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "acme", updated.Name)
	assert.Equal(t, "+1 555 0100", updated.Phone)
	assert.Equal(t, entity.RiskHigh, updated.RiskLevel)
	assert.False(t, updated.UpdatedAt.Before(c.UpdatedAt))
}

func TestCustomerRepo_DeleteKeepsInvoices(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := createCustomer(t, r, "acme")
	createInvoice(t, r, c.ID, 500)

	ok, err := r.customers.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	invs, err := r.invoices.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, invs, 1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Invoices y agregados
// ─────────────────────────────────────────────────────────────────────────────

func TestInvoiceRepo_CreateDefaultsAndAggregates(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")

	inv := createInvoice(t, r, c.ID, 1200)
	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, entity.InvoiceDraft, inv.Status)
	assert.Equal(t, entity.PaymentUnpaid, inv.PaymentStatus)
	assert.Equal(t, entity.RiskLow, inv.RiskLevel)
	assert.Equal(t, 10, inv.RiskScore)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, inv.OutstandingAmount.Equal(decimal.NewFromInt(1200)))

	createInvoice(t, r, c.ID, 300)
	assertAggregates(t, r, c.ID)

	got, err := r.customers.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalInvoices)
	assert.Equal(t, "1500", got.OutstandingAmount.String())
}

func TestInvoiceRepo_AggregateRefreshStampsCustomerUpdatedAt(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")
	before := c.UpdatedAt
	time.Sleep(2 * time.Millisecond)

	createInvoice(t, r, c.ID, 500)

	got, err := r.customers.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestInvoiceRepo_PaidTransition(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")
	inv := createInvoice(t, r, c.ID, 1000)

	updated, err := r.invoices.Update(context.Background(), inv.InvoiceID, entity.InvoicePatch{
		PaymentStatus: entity.Ptr(entity.PaymentPaid),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "1000", updated.PaidAmount.String())
	assert.True(t, updated.OutstandingAmount.IsZero())
	require.NotNil(t, updated.PaymentDate)
	assert.Equal(t, entity.Today(), *updated.PaymentDate)
	assert.NotEmpty(t, updated.PaymentReference)
	assertAggregates(t, r, c.ID)
}

func TestInvoiceRepo_PartialPaymentKeepsOutstandingInvariant(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")
	inv := createInvoice(t, r, c.ID, 1000)
	ctx := context.Background()

	updated, err := r.invoices.Update(ctx, inv.InvoiceID, entity.InvoicePatch{
		PaidAmount:    entity.Ptr(decimal.NewFromInt(400)),
		PaymentStatus: entity.Ptr(entity.PaymentPartial),
	})
	require.NoError(t, err)
	assert.Equal(t, "600", updated.OutstandingAmount.String())

	updated, err = r.invoices.Update(ctx, inv.InvoiceID, entity.InvoicePatch{
		TotalAmount: entity.Ptr(decimal.NewFromInt(1500)),
	})
	require.NoError(t, err)
	assert.True(t, updated.OutstandingAmount.Equal(updated.TotalAmount.Sub(updated.PaidAmount)))
	assert.Equal(t, "1100", updated.OutstandingAmount.String())
	assertAggregates(t, r, c.ID)
}

func TestInvoiceRepo_ChangingOwnerRefreshesBothCustomers(t *testing.T) {
	r := newRepos(t)
	a := createCustomer(t, r, "a")
	b := createCustomer(t, r, "b")
	inv := createInvoice(t, r, a.ID, 700)

	_, err := r.invoices.Update(context.Background(), inv.InvoiceID, entity.InvoicePatch{CustomerID: &b.ID})
	require.NoError(t, err)

	assertAggregates(t, r, a.ID)
	assertAggregates(t, r, b.ID)
}

func TestInvoiceRepo_DeleteRefreshesOwner(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")
	keep := createInvoice(t, r, c.ID, 250)
	drop := createInvoice(t, r, c.ID, 750)
	ctx := context.Background()

	ok, err := r.invoices.Delete(ctx, drop.InvoiceID)
	require.NoError(t, err)
	assert.True(t, ok)
	assertAggregates(t, r, c.ID)

	got, err := r.customers.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalInvoices)
	assert.True(t, got.OutstandingAmount.Equal(keep.OutstandingAmount))

	ok, err = r.invoices.Delete(ctx, drop.InvoiceID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvoiceRepo_RegisterReminder(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")
	inv := createInvoice(t, r, c.ID, 100)
	on := entity.MustDate("2024-10-02")

	updated, err := r.invoices.RegisterReminder(context.Background(), inv.InvoiceID, on)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.ReminderCount)
	assert.Equal(t, entity.InvoiceSent, updated.Status)
	require.NotNil(t, updated.LastReminderDate)
	assert.Equal(t, on, *updated.LastReminderDate)
}

func TestInvoiceRepo_ConcurrentCreatesAreNotLost(t *testing.T) {
	r := newRepos(t)
	c := createCustomer(t, r, "acme")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv := &entity.Invoice{
				CustomerID:  c.ID,
				InvoiceDate: entity.MustDate("2024-09-01"),
				DueDate:     entity.MustDate("2024-09-30"),
				Amount:      decimal.NewFromInt(10),
			}
			assert.NoError(t, r.invoices.Create(context.Background(), inv))
		}()
	}
	wg.Wait()

	invs, err := r.invoices.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, invs, n)
	assertAggregates(t, r, c.ID)
}

// ─────────────────────────────────────────────────────────────────────────────
// Payments y communications
// ─────────────────────────────────────────────────────────────────────────────

func TestPaymentRepo_CreateAndListByCustomer(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	p := &entity.Payment{CustomerID: "cust-1", Amount: decimal.NewFromInt(50), Currency: "USD"}
	require.NoError(t, r.payments.Create(ctx, p))
	require.NoError(t, r.payments.Create(ctx, &entity.Payment{CustomerID: "cust-2"}))

	assert.Contains(t, p.ID, "pay-")
	got, err := r.payments.ListByCustomer(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p.ID, got[0].ID)

	updated, err := r.payments.Update(ctx, p.ID, entity.PaymentPatch{Status: entity.Ptr(entity.TransactionFailed)})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionFailed, updated.Status)
}

func TestCommunicationRepo_CreateDefaultsToSent(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	c := &entity.Communication{CustomerID: "cust-1", Type: entity.ChannelSMS, Message: "hola"}
	require.NoError(t, r.comms.Create(ctx, c))

	assert.Equal(t, entity.DeliverySent, c.Status)
	assert.False(t, c.SentAt.IsZero())

	got, err := r.comms.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hola", got.Message)
}
