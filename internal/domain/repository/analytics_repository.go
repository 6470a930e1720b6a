package repository

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// RevenueTrendRepository serie de ingresos por período usada por el dashboard.
// Es de solo lectura: la serie llega con los datos semilla y no se deriva de los pagos.
type RevenueTrendRepository interface {
	// List devuelve los puntos ordenados por período ascendente.
	List(ctx context.Context) ([]entity.RevenuePoint, error)
}
