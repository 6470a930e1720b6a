package kvstore

import "context"

// collection operaciones genéricas de lectura sobre una colección.
type collection[T any] struct {
	store *Store
	kind  Kind
	id    func(*T) string
}

func (c collection[T]) list(ctx context.Context) ([]T, error) {
	var out []T
	err := c.store.View(ctx, func(tx *Tx) error {
		out = Load[T](tx, c.kind)
		return nil
	})
	return out, err
}

func (c collection[T]) filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	all, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// get devuelve (nil, nil) si el id no existe.
func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	var found *T
	err := c.store.View(ctx, func(tx *Tx) error {
		recs := Load[T](tx, c.kind)
		if i := indexOf(recs, c.id, id); i >= 0 {
			found = &recs[i]
		}
		return nil
	})
	return found, err
}

// insert agrega rec al final de la colección.
func (c collection[T]) insert(ctx context.Context, rec T) error {
	return c.store.Update(ctx, func(tx *Tx) error {
		recs := Load[T](tx, c.kind)
		return Save(tx, c.kind, append(recs, rec))
	})
}

// modify aplica fn sobre el registro id y lo guarda; (nil, nil) si no existe.
func (c collection[T]) modify(ctx context.Context, id string, fn func(*T)) (*T, error) {
	var updated *T
	err := c.store.Update(ctx, func(tx *Tx) error {
		recs := Load[T](tx, c.kind)
		i := indexOf(recs, c.id, id)
		if i < 0 {
			return nil
		}
		fn(&recs[i])
		rec := recs[i]
		updated = &rec
		return Save(tx, c.kind, recs)
	})
	return updated, err
}

// remove borra el registro id; false si no existe.
func (c collection[T]) remove(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := c.store.Update(ctx, func(tx *Tx) error {
		recs := Load[T](tx, c.kind)
		i := indexOf(recs, c.id, id)
		if i < 0 {
			return nil
		}
		removed = true
		return Save(tx, c.kind, append(recs[:i], recs[i+1:]...))
	})
	return removed, err
}

func indexOf[T any](recs []T, id func(*T) string, want string) int {
	for i := range recs {
		if id(&recs[i]) == want {
			return i
		}
	}
	return -1
}
