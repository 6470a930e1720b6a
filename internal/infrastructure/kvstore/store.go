// Package kvstore persiste cada colección de entidades como un único valor JSON
// dentro de un almacén clave-valor (BadgerDB embebido o una tabla de PostgreSQL).
//
// Cada escritura carga la colección completa, la modifica en memoria y la vuelve a
// guardar entera. Las escrituras se serializan con un mutex del Store y corren dentro
// de una transacción del backend, así una factura y los agregados de su cliente se
// confirman juntos.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Kind identifica una colección persistida.
type Kind string

const (
	KindCustomers      Kind = "customers"
	KindInvoices       Kind = "invoices"
	KindPayments       Kind = "payments"
	KindCommunications Kind = "communications"
	KindRevenueTrend   Kind = "revenue_trend"
)

// Kinds todas las colecciones conocidas.
var Kinds = []Kind{KindCustomers, KindInvoices, KindPayments, KindCommunications, KindRevenueTrend}

const initializedKey = "initialized"

// ErrReadOnly se devuelve al intentar escribir dentro de Store.View.
var ErrReadOnly = errors.New("kvstore: transacción de solo lectura")

// Bucket operaciones de clave-valor dentro de una transacción del backend.
type Bucket interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Backend motor de almacenamiento subyacente.
type Backend interface {
	View(ctx context.Context, fn func(Bucket) error) error
	Update(ctx context.Context, fn func(Bucket) error) error
	Close() error
}

// Store adaptador de colecciones sobre un Backend. Las claves son "<namespace>_<kind>".
type Store struct {
	backend   Backend
	namespace string
	log       zerolog.Logger
	mu        sync.Mutex
}

// New construye el Store. namespace vacío usa las claves sin prefijo.
func New(backend Backend, namespace string, log zerolog.Logger) *Store {
	return &Store{
		backend:   backend,
		namespace: namespace,
		log:       log.With().Str("component", "kvstore").Logger(),
	}
}

// Tx vista de las colecciones dentro de una transacción.
type Tx struct {
	bucket   Bucket
	store    *Store
	writable bool
}

// View ejecuta fn en una transacción de solo lectura.
func (s *Store) View(ctx context.Context, fn func(*Tx) error) error {
	return s.backend.View(ctx, func(b Bucket) error {
		return fn(&Tx{bucket: b, store: s})
	})
}

// Update ejecuta fn en una transacción de escritura. Las escrituras no se solapan.
func (s *Store) Update(ctx context.Context, fn func(*Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.backend.Update(ctx, func(b Bucket) error {
		return fn(&Tx{bucket: b, store: s, writable: true})
	})
}

// Close cierra el backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + "_" + name
}

// Load devuelve la colección kind. Si no existe o no se puede leer/decodificar
// devuelve una colección vacía; los fallos se registran y no se propagan.
func Load[T any](tx *Tx, kind Kind) []T {
	raw, ok, err := tx.bucket.Get(tx.store.key(string(kind)))
	if err != nil {
		tx.store.log.Error().Err(err).Str("kind", string(kind)).Msg("error leyendo colección")
		return []T{}
	}
	if !ok || len(raw) == 0 {
		return []T{}
	}
	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		tx.store.log.Error().Err(err).Str("kind", string(kind)).Msg("colección corrupta, se trata como vacía")
		return []T{}
	}
	if recs == nil {
		recs = []T{}
	}
	return recs
}

// Save reemplaza la colección kind completa.
func Save[T any](tx *Tx, kind Kind, recs []T) error {
	if !tx.writable {
		return ErrReadOnly
	}
	if recs == nil {
		recs = []T{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("kvstore: serializar %s: %w", kind, err)
	}
	if err := tx.bucket.Set(tx.store.key(string(kind)), raw); err != nil {
		return fmt.Errorf("kvstore: guardar %s: %w", kind, err)
	}
	return nil
}

// Initialized informa si la semilla ya se aplicó.
func (tx *Tx) Initialized() bool {
	raw, ok, err := tx.bucket.Get(tx.store.key(initializedKey))
	if err != nil {
		tx.store.log.Error().Err(err).Msg("error leyendo marca de inicialización")
		return false
	}
	return ok && string(raw) == "true"
}

// MarkInitialized persiste la marca de inicialización.
func (tx *Tx) MarkInitialized() error {
	if !tx.writable {
		return ErrReadOnly
	}
	return tx.bucket.Set(tx.store.key(initializedKey), []byte("true"))
}

// Clear borra todas las colecciones y la marca de inicialización.
func (tx *Tx) Clear() error {
	if !tx.writable {
		return ErrReadOnly
	}
	for _, k := range Kinds {
		if err := tx.bucket.Delete(tx.store.key(string(k))); err != nil {
			return fmt.Errorf("kvstore: borrar %s: %w", k, err)
		}
	}
	return tx.bucket.Delete(tx.store.key(initializedKey))
}
