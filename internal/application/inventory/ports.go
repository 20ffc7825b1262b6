package inventory

import (
	"context"

	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada transición de la máquina de estados
// (crear, completar, rechazar, revertir, eliminar) corre como una unidad
// atómica: verificación de stock y mutaciones o se aplican todas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
