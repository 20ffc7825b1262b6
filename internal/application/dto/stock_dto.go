package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/application/inventory"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// StockRowResponse existencia de un producto en un almacén.
type StockRowResponse struct {
	ProductCode int64           `json:"product_code"`
	WarehouseID int             `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductStockResponse existencias de un producto en todos los almacenes.
type ProductStockResponse struct {
	ProductCode int64              `json:"product_code"`
	Total       decimal.Decimal    `json:"total"`
	Rows        []StockRowResponse `json:"rows"`
}

// WarehouseResponse almacén del catálogo fijo.
type WarehouseResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Virtual bool   `json:"virtual"`
}

// LowStockItemResponse producto por debajo de su umbral mínimo.
type LowStockItemResponse struct {
	ProductCode int64           `json:"product_code"`
	Name        string          `json:"name"`
	UnitMeasure string          `json:"unit_measure"`
	MinStock    decimal.Decimal `json:"min_stock"`
	TotalStock  decimal.Decimal `json:"total_stock"`
}

// ToStockRowResponse convierte la entidad a su representación HTTP.
func ToStockRowResponse(s *entity.Stock) StockRowResponse {
	return StockRowResponse{
		ProductCode: s.ProductCode,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToLowStockItemResponse convierte el resultado del caso de uso.
func ToLowStockItemResponse(it inventory.LowStockItem) LowStockItemResponse {
	return LowStockItemResponse{
		ProductCode: it.ProductCode,
		Name:        it.Name,
		UnitMeasure: it.UnitMeasure,
		MinStock:    it.MinStock,
		TotalStock:  it.TotalStock,
	}
}
