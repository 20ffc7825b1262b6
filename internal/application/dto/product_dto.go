package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// ProductResponse representación HTTP de un producto del catálogo (solo lectura:
// el catálogo lo administra un sistema externo).
type ProductResponse struct {
	Code                    int64           `json:"code"`
	Name                    string          `json:"name"`
	UnitMeasure             string          `json:"unit_measure"`
	MinStock                decimal.Decimal `json:"min_stock"`
	Brand                   string          `json:"brand,omitempty"`
	Category                string          `json:"category,omitempty"`
	LocationPrincipal       string          `json:"location_principal,omitempty"`
	LocationInstrumentacion string          `json:"location_instrumentacion,omitempty"`
}

// ToProductResponse convierte la entidad a su representación HTTP.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		Code:                    p.Code,
		Name:                    p.Name,
		UnitMeasure:             p.UnitMeasure,
		MinStock:                p.MinStock,
		Brand:                   p.Brand,
		Category:                p.Category,
		LocationPrincipal:       p.LocationPrincipal,
		LocationInstrumentacion: p.LocationInstrumentacion,
	}
}
