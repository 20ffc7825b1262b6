package entity

import "time"

// Estados del ciclo de aprobación de un requerimiento.
// Se persisten con la letra del formato legado: P, A, R.
type RequirementState string

const (
	RequirementPending  RequirementState = "P"
	RequirementApproved RequirementState = "A"
	RequirementRejected RequirementState = "R"
)

// Valid indica si el estado es uno de los tres conocidos.
func (s RequirementState) Valid() bool {
	switch s {
	case RequirementPending, RequirementApproved, RequirementRejected:
		return true
	}
	return false
}

// Requirement representa una solicitud de material. Flujo de aprobación
// paralelo y más ligero que el de movimientos: nunca toca el stock.
// ProductCode es opcional; para artículos aún sin catalogar se usan
// Name y Brand en texto libre.
type Requirement struct {
	ID            string
	ProductCode   *int64
	Name          string
	Brand         string
	Quantity      int
	RequestedBy   string
	ResponsibleID *string
	State         RequirementState
	Notes         string
	RequestedAt   time.Time
	ResolvedAt    *time.Time
}
