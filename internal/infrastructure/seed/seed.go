// Package seed carga los datos de ejemplo de cartera en un kvstore vacío.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
)

//go:embed fixtures.json
var fixturesJSON []byte

// Fixtures datos semilla de todas las colecciones.
type Fixtures struct {
	Customers      []entity.Customer      `json:"customers"`
	Invoices       []entity.Invoice       `json:"invoices"`
	Payments       []entity.Payment       `json:"payments"`
	Communications []entity.Communication `json:"communications"`
	RevenueTrend   []entity.RevenuePoint  `json:"revenue_trend"`
}

// LoadFixtures decodifica los datos embebidos. Los agregados de cada cliente se
// recalculan desde sus facturas.
func LoadFixtures() (*Fixtures, error) {
	var f Fixtures
	if err := json.Unmarshal(fixturesJSON, &f); err != nil {
		return nil, fmt.Errorf("seed: decodificar fixtures: %w", err)
	}
	ids := make([]string, len(f.Customers))
	for i := range f.Customers {
		ids[i] = f.Customers[i].ID
	}
	kvstore.RefreshAggregates(f.Customers, f.Invoices, ids...)
	return &f, nil
}

// Initialize siembra el store si aún no tiene la marca de inicialización.
// Llamadas posteriores no hacen nada. Devuelve true si sembró.
func Initialize(ctx context.Context, store *kvstore.Store, log zerolog.Logger) (bool, error) {
	fixtures, err := LoadFixtures()
	if err != nil {
		return false, err
	}

	seeded := false
	err = store.Update(ctx, func(tx *kvstore.Tx) error {
		if tx.Initialized() {
			return nil
		}
		if err := kvstore.Save(tx, kvstore.KindCustomers, fixtures.Customers); err != nil {
			return err
		}
		if err := kvstore.Save(tx, kvstore.KindInvoices, fixtures.Invoices); err != nil {
			return err
		}
		if err := kvstore.Save(tx, kvstore.KindPayments, fixtures.Payments); err != nil {
			return err
		}
		if err := kvstore.Save(tx, kvstore.KindCommunications, fixtures.Communications); err != nil {
			return err
		}
		if err := kvstore.Save(tx, kvstore.KindRevenueTrend, fixtures.RevenueTrend); err != nil {
			return err
		}
		seeded = true
		return tx.MarkInitialized()
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}

	if seeded {
		log.Info().
			Int("customers", len(fixtures.Customers)).
			Int("invoices", len(fixtures.Invoices)).
			Int("payments", len(fixtures.Payments)).
			Int("communications", len(fixtures.Communications)).
			Msg("datos semilla cargados")
	} else {
		log.Debug().Msg("store ya inicializado, se omite la semilla")
	}
	return seeded, nil
}

// Reset borra todas las colecciones y la marca, y vuelve a sembrar.
func Reset(ctx context.Context, store *kvstore.Store, log zerolog.Logger) error {
	if err := store.Update(ctx, func(tx *kvstore.Tx) error { return tx.Clear() }); err != nil {
		return fmt.Errorf("seed: limpiar store: %w", err)
	}
	log.Warn().Msg("store limpiado")
	_, err := Initialize(ctx, store, log)
	return err
}
