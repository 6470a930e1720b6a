package entity

import "github.com/shopspring/decimal"

// RevenuePoint ingreso agregado de un período (serie precalculada, no derivada de pagos).
type RevenuePoint struct {
	Period  string          `json:"period"` // "2024-09"
	Revenue decimal.Decimal `json:"revenue"`
	Date    Date            `json:"date"` // cierre del período
}
