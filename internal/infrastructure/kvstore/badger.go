package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog"
)

// BadgerBackend Backend sobre BadgerDB v3 embebido.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger abre (o crea) la base en path. Con inMemory no se toca el disco.
func OpenBadger(path string, inMemory bool, log zerolog.Logger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{log: log.With().Str("component", "badger").Logger()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: abrir %q: %w", path, err)
	}
	return &BadgerBackend{db: db}, nil
}

func (b *BadgerBackend) View(ctx context.Context, fn func(Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.View(func(txn *badger.Txn) error {
		return fn(badgerBucket{txn: txn})
	})
}

func (b *BadgerBackend) Update(ctx context.Context, fn func(Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return fn(badgerBucket{txn: txn})
	})
}

func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

type badgerBucket struct {
	txn *badger.Txn
}

func (b badgerBucket) Get(key string) ([]byte, bool, error) {
	item, err := b.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b badgerBucket) Set(key string, value []byte) error {
	return b.txn.Set([]byte(key), value)
}

func (b badgerBucket) Delete(key string) error {
	return b.txn.Delete([]byte(key))
}

// badgerLogger redirige el log interno de badger a zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(strings.TrimSpace(format), args...)
}
