package kvstore

import (
	"context"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/pkg/idgen"
)

// CommunicationRepo implementa repository.CommunicationRepository.
type CommunicationRepo struct {
	col collection[entity.Communication]
}

// NewCommunicationRepo construye el repositorio de comunicaciones.
func NewCommunicationRepo(store *Store) *CommunicationRepo {
	return &CommunicationRepo{col: collection[entity.Communication]{
		store: store,
		kind:  KindCommunications,
		id:    func(c *entity.Communication) string { return c.ID },
	}}
}

var _ repository.CommunicationRepository = (*CommunicationRepo)(nil)

func (r *CommunicationRepo) List(ctx context.Context) ([]entity.Communication, error) {
	return r.col.list(ctx)
}

func (r *CommunicationRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Communication, error) {
	return r.col.filter(ctx, func(c *entity.Communication) bool { return c.CustomerID == customerID })
}

func (r *CommunicationRepo) GetByID(ctx context.Context, id string) (*entity.Communication, error) {
	return r.col.get(ctx, id)
}

// Create registra el mensaje como enviado si no trae estado.
func (r *CommunicationRepo) Create(ctx context.Context, c *entity.Communication) error {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = idgen.New("comm")
	}
	if c.Status == "" {
		c.Status = entity.DeliverySent
	}
	if c.SentAt.IsZero() {
		c.SentAt = now
	}
	c.CreatedAt = now
	return r.col.insert(ctx, *c)
}

func (r *CommunicationRepo) Update(ctx context.Context, id string, patch entity.CommunicationPatch) (*entity.Communication, error) {
	return r.col.modify(ctx, id, func(c *entity.Communication) {
		patch.Apply(c)
	})
}

func (r *CommunicationRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.remove(ctx, id)
}
