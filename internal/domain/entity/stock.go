package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia actual de un producto en un almacén.
// Una fila por (producto, almacén); la ausencia de fila equivale a cantidad cero.
// Solo la mutan las transiciones de movimientos; nunca puede quedar negativa.
type Stock struct {
	ProductCode int64
	WarehouseID int
	Quantity    decimal.Decimal
	Active      bool
	UpdatedAt   time.Time
}
