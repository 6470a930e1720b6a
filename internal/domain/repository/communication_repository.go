package repository

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// CommunicationRepository define el puerto de persistencia para Communication.
type CommunicationRepository interface {
	List(ctx context.Context) ([]entity.Communication, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Communication, error)
	GetByID(ctx context.Context, id string) (*entity.Communication, error)
	Create(ctx context.Context, c *entity.Communication) error
	Update(ctx context.Context, id string, patch entity.CommunicationPatch) (*entity.Communication, error)
	Delete(ctx context.Context, id string) (bool, error)
}
