// Package storage abre el backend clave/valor configurado (Badger o PostgreSQL) y
// construye el store sobre él.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/postgres"
	"github.com/jhoicas/intellicollect-api/pkg/config"
)

// Open abre el backend según cfg.Store.Driver. Store.Close cierra el backend.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*kvstore.Store, error) {
	var backend kvstore.Backend
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		kv, err := postgres.NewKVBackend(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		backend = kv
	default:
		bdb, err := kvstore.OpenBadger(cfg.Store.Path, cfg.Store.InMemory, log)
		if err != nil {
			return nil, err
		}
		backend = bdb
	}
	log.Info().
		Str("driver", cfg.Store.Driver).
		Str("namespace", cfg.Store.Namespace).
		Bool("in_memory", cfg.Store.InMemory).
		Msg("store abierto")
	return kvstore.New(backend, cfg.Store.Namespace, log), nil
}
