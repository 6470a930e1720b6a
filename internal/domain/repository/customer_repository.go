package repository

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (cartera).
// GetByID y Update devuelven (nil, nil) si el id no existe; Delete devuelve false.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// Create asigna id y valores por defecto sobre c.
	Create(ctx context.Context, c *entity.Customer) error
	Update(ctx context.Context, id string, patch entity.CustomerPatch) (*entity.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
