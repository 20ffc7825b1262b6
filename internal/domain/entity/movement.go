package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/domain"
)

// MovementType tipo de movimiento. Se persiste con el prefijo de tres letras
// del formato legado (ENT/SAL/TRF), que también encabeza el código de transacción.
type MovementType string

const (
	MovementEntry    MovementType = "ENT" // entrada desde el exterior
	MovementExit     MovementType = "SAL" // salida hacia cliente/exterior
	MovementTransfer MovementType = "TRF" // traslado entre almacenes
)

// ParseMovementType valida un prefijo de tipo recibido como texto.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementEntry, MovementExit, MovementTransfer:
		return MovementType(s), nil
	}
	return "", fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, s)
}

// Valid indica si el tipo es uno de los tres conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementEntry, MovementExit, MovementTransfer:
		return true
	}
	return false
}

// MovementState estado del ciclo de vida. Se persiste con la letra del
// formato legado: P (pendiente), C (completado), R (rechazado).
type MovementState string

const (
	StatePending   MovementState = "P"
	StateCompleted MovementState = "C"
	StateRejected  MovementState = "R"
)

// ParseMovementState valida una letra de estado recibida como texto.
func ParseMovementState(s string) (MovementState, error) {
	switch MovementState(s) {
	case StatePending, StateCompleted, StateRejected:
		return MovementState(s), nil
	}
	return "", fmt.Errorf("%w: estado de movimiento %q", domain.ErrInvalidInput, s)
}

// Movement representa una transacción de inventario (entrada, salida o traslado)
// con su ciclo de aprobación. El stock solo cambia cuando el movimiento pasa a
// completado, y se revierte exactamente al deshacerlo o eliminarlo.
type Movement struct {
	ID            int64  // secuencia interna monótona
	Code          string // código legible, ej. ENT-000042
	Type          MovementType
	ProductCode   int64
	Quantity      decimal.Decimal // siempre > 0
	State         MovementState
	OriginID      *int // almacén origen; nil = origen externo (solo ENT)
	DestinationID *int // almacén destino; nil = destino externo (solo SAL)
	RequestedBy   string
	ResponsibleID *string // quien completó/rechazó; nil mientras está pendiente
	Notes         string
	RequestedAt   time.Time
	ApprovedAt    *time.Time // se limpia al revertir a pendiente
}

// Validate verifica los invariantes estructurales del movimiento:
// cantidad positiva y nulabilidad de origen/destino según el tipo
// (exactamente uno nulo para ENT/SAL, ambos presentes para TRF).
func (m *Movement) Validate() error {
	if !m.Type.Valid() {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, string(m.Type))
	}
	if m.ProductCode <= 0 {
		return fmt.Errorf("%w: código de producto requerido", domain.ErrInvalidInput)
	}
	if !m.Quantity.IsPositive() {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	switch m.Type {
	case MovementEntry:
		if m.OriginID != nil {
			return fmt.Errorf("%w: una entrada no lleva almacén origen", domain.ErrInvalidInput)
		}
		if m.DestinationID == nil || !IsStockWarehouse(*m.DestinationID) {
			return fmt.Errorf("%w: una entrada requiere almacén destino válido", domain.ErrInvalidInput)
		}
	case MovementExit:
		if m.DestinationID != nil {
			return fmt.Errorf("%w: una salida no lleva almacén destino", domain.ErrInvalidInput)
		}
		if m.OriginID == nil || !IsStockWarehouse(*m.OriginID) {
			return fmt.Errorf("%w: una salida requiere almacén origen válido", domain.ErrInvalidInput)
		}
	case MovementTransfer:
		if m.OriginID == nil || m.DestinationID == nil {
			return fmt.Errorf("%w: un traslado requiere origen y destino", domain.ErrInvalidInput)
		}
		if !IsStockWarehouse(*m.OriginID) || !IsStockWarehouse(*m.DestinationID) {
			return fmt.Errorf("%w: almacén de traslado inválido", domain.ErrInvalidInput)
		}
		if *m.OriginID == *m.DestinationID {
			return fmt.Errorf("%w: origen y destino no pueden coincidir", domain.ErrInvalidInput)
		}
	}
	return nil
}
