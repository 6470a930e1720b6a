package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVBackend implementa kvstore.Backend sobre la tabla kv_entries: una fila por colección.
type KVBackend struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

var _ kvstore.Backend = (*KVBackend)(nil)

// NewKVBackend crea la tabla si no existe y devuelve el backend.
func NewKVBackend(ctx context.Context, pool *pgxpool.Pool) (*KVBackend, error) {
	if _, err := pool.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("crear kv_entries: %w", err)
	}
	return &KVBackend{pool: pool, tx: NewTxRunner(pool)}, nil
}

func (b *KVBackend) View(ctx context.Context, fn func(kvstore.Bucket) error) error {
	return b.tx.Run(ctx, true, func(tx pgx.Tx) error {
		return fn(&kvBucket{ctx: ctx, tx: tx})
	})
}

func (b *KVBackend) Update(ctx context.Context, fn func(kvstore.Bucket) error) error {
	return b.tx.Run(ctx, false, func(tx pgx.Tx) error {
		return fn(&kvBucket{ctx: ctx, tx: tx})
	})
}

// Close cierra el pool.
func (b *KVBackend) Close() error {
	b.pool.Close()
	return nil
}

type kvBucket struct {
	ctx context.Context
	tx  pgx.Tx
}

func (k *kvBucket) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := k.tx.QueryRow(k.ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer %s: %w", key, err)
	}
	return value, true, nil
}

func (k *kvBucket) Set(key string, value []byte) error {
	const q = `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := k.tx.Exec(k.ctx, q, key, value); err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

func (k *kvBucket) Delete(key string) error {
	if _, err := k.tx.Exec(k.ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("borrar %s: %w", key, err)
	}
	return nil
}
