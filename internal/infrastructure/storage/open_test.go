package storage_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/storage"
	"github.com/jhoicas/intellicollect-api/pkg/config"
)

func TestOpen_BadgerInMemory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver: config.StoreDriverBadger, InMemory: true, Namespace: "t",
	}}
	store, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Update(ctx, func(tx *kvstore.Tx) error { return tx.MarkInitialized() }))
	var initialized bool
	require.NoError(t, store.View(ctx, func(tx *kvstore.Tx) error {
		initialized = tx.Initialized()
		return nil
	}))
	assert.True(t, initialized)
}

func TestOpen_BadgerOnDisk(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver: config.StoreDriverBadger, Path: t.TempDir(), Namespace: "t",
	}}
	store, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
