package kvstore

import (
	"context"
	"sort"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
)

// RevenueTrendRepo implementa repository.RevenueTrendRepository.
type RevenueTrendRepo struct {
	store *Store
}

// NewRevenueTrendRepo construye el repositorio de la serie de ingresos.
func NewRevenueTrendRepo(store *Store) *RevenueTrendRepo {
	return &RevenueTrendRepo{store: store}
}

var _ repository.RevenueTrendRepository = (*RevenueTrendRepo)(nil)

func (r *RevenueTrendRepo) List(ctx context.Context) ([]entity.RevenuePoint, error) {
	var points []entity.RevenuePoint
	err := r.store.View(ctx, func(tx *Tx) error {
		points = Load[entity.RevenuePoint](tx, KindRevenueTrend)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	return points, nil
}
