package kvstore_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
)

func newBackend(t *testing.T) *kvstore.BadgerBackend {
	t.Helper()
	backend, err := kvstore.OpenBadger("", true, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func newStore(t *testing.T) *kvstore.Store {
	t.Helper()
	return kvstore.New(newBackend(t), "test", zerolog.Nop())
}

// ─────────────────────────────────────────────────────────────────────────────
// Load / Save
// ─────────────────────────────────────────────────────────────────────────────

func TestLoad_AbsentCollectionIsEmpty(t *testing.T) {
	store := newStore(t)

	err := store.View(context.Background(), func(tx *kvstore.Tx) error {
		got := kvstore.Load[entity.Customer](tx, kvstore.KindCustomers)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		return nil
	})
	require.NoError(t, err)
}

func TestLoad_CorruptCollectionIsEmptyAndLogged(t *testing.T) {
	backend := newBackend(t)
	var buf bytes.Buffer
	store := kvstore.New(backend, "test", zerolog.New(&buf))

	err := backend.Update(context.Background(), func(b kvstore.Bucket) error {
		return b.Set("test_customers", []byte("{esto no es json"))
	})
	require.NoError(t, err)

	err = store.View(context.Background(), func(tx *kvstore.Tx) error {
		assert.Empty(t, kvstore.Load[entity.Customer](tx, kvstore.KindCustomers))
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"kind":"customers"`)
}

func TestSave_OverwritesWholeCollection(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, func(tx *kvstore.Tx) error {
		return kvstore.Save(tx, kvstore.KindCustomers, []entity.Customer{{ID: "a"}, {ID: "b"}})
	}))
	require.NoError(t, store.Update(ctx, func(tx *kvstore.Tx) error {
		return kvstore.Save(tx, kvstore.KindCustomers, []entity.Customer{{ID: "c"}})
	}))

	require.NoError(t, store.View(ctx, func(tx *kvstore.Tx) error {
		got := kvstore.Load[entity.Customer](tx, kvstore.KindCustomers)
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].ID)
		return nil
	}))
}

func TestSave_RejectedInReadOnlyTx(t *testing.T) {
	store := newStore(t)

	err := store.View(context.Background(), func(tx *kvstore.Tx) error {
		return kvstore.Save(tx, kvstore.KindCustomers, []entity.Customer{{ID: "a"}})
	})
	assert.ErrorIs(t, err, kvstore.ErrReadOnly)
}

func TestNamespacesAreIsolated(t *testing.T) {
	backend := newBackend(t)
	a := kvstore.New(backend, "a", zerolog.Nop())
	b := kvstore.New(backend, "b", zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, a.Update(ctx, func(tx *kvstore.Tx) error {
		if err := tx.MarkInitialized(); err != nil {
			return err
		}
		return kvstore.Save(tx, kvstore.KindPayments, []entity.Payment{{ID: "pay-1"}})
	}))

	require.NoError(t, b.View(ctx, func(tx *kvstore.Tx) error {
		assert.False(t, tx.Initialized())
		assert.Empty(t, kvstore.Load[entity.Payment](tx, kvstore.KindPayments))
		return nil
	}))
}

func TestClear_RemovesCollectionsAndFlag(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, func(tx *kvstore.Tx) error {
		if err := tx.MarkInitialized(); err != nil {
			return err
		}
		return kvstore.Save(tx, kvstore.KindInvoices, []entity.Invoice{{InvoiceID: "inv-1"}})
	}))
	require.NoError(t, store.Update(ctx, func(tx *kvstore.Tx) error { return tx.Clear() }))

	require.NoError(t, store.View(ctx, func(tx *kvstore.Tx) error {
		assert.False(t, tx.Initialized())
		assert.Empty(t, kvstore.Load[entity.Invoice](tx, kvstore.KindInvoices))
		return nil
	}))
}

func TestUpdate_CancelledContext(t *testing.T) {
	store := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Update(ctx, func(tx *kvstore.Tx) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
