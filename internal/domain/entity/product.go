package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (multi-almacén).
// El código numérico lo asigna el catálogo externo y actúa como clave primaria;
// el núcleo de inventario solo lo consulta, nunca lo modifica.
type Product struct {
	Code                    int64
	Name                    string
	UnitMeasure             string
	MinStock                decimal.Decimal // umbral mínimo, >= 0
	Brand                   string
	Category                string
	LocationPrincipal       string // ubicación en almacén Principal
	LocationInstrumentacion string // ubicación en almacén Instrumentación
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
