package repository

import (
	"time"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// MovementFilter criterios opcionales para listar movimientos.
type MovementFilter struct {
	Type   *entity.MovementType
	State  *entity.MovementState
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// MovementRepository define el puerto de persistencia para movimientos.
// El repositorio es solo almacenamiento: la máquina de estados vive en
// el caso de uso, que invoca estos métodos dentro de una transacción.
type MovementRepository interface {
	// Create persiste el movimiento y asigna su ID secuencial.
	Create(movement *entity.Movement) error
	// GetByID devuelve nil si el movimiento no existe.
	GetByID(id int64) (*entity.Movement, error)
	// GetByIDForUpdate bloquea la fila para la transición (SELECT FOR UPDATE).
	GetByIDForUpdate(id int64) (*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
	// ListCodes devuelve los códigos existentes que empiezan por el prefijo dado.
	ListCodes(prefix string) ([]string, error)
	Update(movement *entity.Movement) error
	Delete(id int64) error
}
