package repository

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	List(ctx context.Context) ([]entity.Payment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Payment, error)
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	Create(ctx context.Context, p *entity.Payment) error
	Update(ctx context.Context, id string, patch entity.PaymentPatch) (*entity.Payment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
