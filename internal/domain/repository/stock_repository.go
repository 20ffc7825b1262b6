package repository

import "github.com/jdrios/almacenes-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// producto+almacén. La ausencia de fila se devuelve como fila en cero,
// nunca como nil: ausencia significa cero, no nulo.
type StockRepository interface {
	Get(productCode int64, warehouseID int) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productCode int64, warehouseID int) (*entity.Stock, error)
	// Upsert inserta o actualiza la cantidad (crea la fila si no existe).
	Upsert(stock *entity.Stock) error
	ListByProduct(productCode int64) ([]*entity.Stock, error)
	ListByWarehouse(warehouseID int) ([]*entity.Stock, error)
}
