package repository

import "github.com/jdrios/almacenes-api/internal/domain/entity"

// RequirementFilter criterios opcionales para listar requerimientos.
type RequirementFilter struct {
	State  *entity.RequirementState
	Limit  int
	Offset int
}

// RequirementRepository define el puerto de persistencia para requerimientos.
type RequirementRepository interface {
	Create(req *entity.Requirement) error
	// GetByID devuelve nil si el requerimiento no existe.
	GetByID(id string) (*entity.Requirement, error)
	List(filter RequirementFilter) ([]*entity.Requirement, error)
	Update(req *entity.Requirement) error
	Delete(id string) error
}
