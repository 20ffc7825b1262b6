package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
	"github.com/jdrios/almacenes-api/pkg/logger"
)

// MovementUseCase es la única autoridad sobre las transiciones de estado de un
// movimiento y sobre la consistencia del stock con esas transiciones.
//
// Transiciones permitidas:
//
//	P -> C (completar, aplica delta de stock)
//	P -> R (rechazar, sin efecto en stock)
//	C -> P (revertir, aplica delta inverso)
//	R -> P (reactivar, sin efecto en stock)
//
// C y R nunca se intercambian directamente: hay que pasar por P.
// La eliminación se permite desde cualquier estado; si el movimiento estaba
// completado, primero se revierte su efecto sobre el stock.
type MovementUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	stocks    repository.StockRepository
	products  repository.ProductRepository
	log       *logger.Logger
}

// NewMovementUseCase construye el caso de uso. Los repositorios directos se
// usan para lecturas; toda escritura pasa por el TxRunner.
func NewMovementUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	stocks repository.StockRepository,
	products repository.ProductRepository,
	log *logger.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		stocks:    stocks,
		products:  products,
		log:       log,
	}
}

// CreateMovementInput entrada para registrar un movimiento.
// Para ENT: DestinationID obligatorio, OriginID nulo (origen externo).
// Para SAL: OriginID obligatorio, DestinationID nulo (destino externo).
// Para TRF: ambos obligatorios y distintos.
type CreateMovementInput struct {
	Type           entity.MovementType
	ProductCode    int64
	Quantity       decimal.Decimal
	OriginID       *int
	DestinationID  *int
	RequestedBy    string
	Notes          string
	DirectComplete bool // privilegio elevado: completa en la misma transacción
}

// Create registra un movimiento en estado pendiente, asignando el código de
// transacción dentro de la misma transacción que lo persiste. Si
// DirectComplete es true se aplica además la transición a completado como
// parte de la misma unidad atómica (todo o nada).
func (uc *MovementUseCase) Create(ctx context.Context, in CreateMovementInput) (*entity.Movement, error) {
	now := time.Now()
	m := &entity.Movement{
		Type:          in.Type,
		ProductCode:   in.ProductCode,
		Quantity:      in.Quantity,
		State:         entity.StatePending,
		OriginID:      in.OriginID,
		DestinationID: in.DestinationID,
		RequestedBy:   in.RequestedBy,
		Notes:         in.Notes,
		RequestedAt:   now,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByCode(in.ProductCode)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductCode)
		}

		codes, err := movRepo.ListCodes(string(in.Type) + "-")
		if err != nil {
			return err
		}
		m.Code = NextCode(in.Type, codes)

		if err := movRepo.Create(m); err != nil {
			return err
		}
		if in.DirectComplete {
			return uc.complete(movRepo, stockRepo, m, in.RequestedBy, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Complete transiciona un movimiento pendiente a completado y aplica el delta
// de stock. Para SAL y TRF verifica primero que el almacén origen tenga
// existencias suficientes; si no, falla con ErrInsufficientStock y el
// movimiento queda pendiente sin efecto parcial alguno.
func (uc *MovementUseCase) Complete(ctx context.Context, id int64, approverID string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		m, err := lockMovement(movRepo, id)
		if err != nil {
			return err
		}
		if m.State != entity.StatePending {
			return fmt.Errorf("%w: completar requiere estado pendiente (actual %s)", domain.ErrInvalidTransition, m.State)
		}
		return uc.complete(movRepo, stockRepo, m, approverID, time.Now())
	})
}

// Reject transiciona un movimiento pendiente a rechazado. Un movimiento
// rechazado nunca tocó el stock, así que no hay efecto en el ledger.
func (uc *MovementUseCase) Reject(ctx context.Context, id int64, approverID string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		m, err := lockMovement(movRepo, id)
		if err != nil {
			return err
		}
		if m.State != entity.StatePending {
			return fmt.Errorf("%w: rechazar requiere estado pendiente (actual %s)", domain.ErrInvalidTransition, m.State)
		}
		now := time.Now()
		m.State = entity.StateRejected
		m.ApprovedAt = &now
		m.ResponsibleID = &approverID
		return movRepo.Update(m)
	})
}

// RevertToPending devuelve un movimiento completado o rechazado a pendiente.
// Si venía de completado, deshace su efecto sobre el stock con el delta
// inverso exacto; si venía de rechazado no hay nada que deshacer.
func (uc *MovementUseCase) RevertToPending(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		m, err := lockMovement(movRepo, id)
		if err != nil {
			return err
		}
		if m.State != entity.StateCompleted && m.State != entity.StateRejected {
			return fmt.Errorf("%w: revertir requiere estado completado o rechazado", domain.ErrInvalidTransition)
		}
		now := time.Now()
		if m.State == entity.StateCompleted {
			if err := uc.revertLedger(stockRepo, m, now); err != nil {
				return err
			}
		}
		m.State = entity.StatePending
		m.ApprovedAt = nil
		m.ResponsibleID = nil
		return movRepo.Update(m)
	})
}

// Delete elimina un movimiento de forma permanente, desde cualquier estado.
// Si estaba completado, primero revierte su efecto sobre el stock para no
// dejar las existencias desalineadas del historial.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		m, err := lockMovement(movRepo, id)
		if err != nil {
			return err
		}
		if m.State == entity.StateCompleted {
			if err := uc.revertLedger(stockRepo, m, time.Now()); err != nil {
				return err
			}
		}
		return movRepo.Delete(id)
	})
}

// GetByID obtiene un movimiento por su ID interno.
func (uc *MovementUseCase) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	m, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, id)
	}
	return m, nil
}

// List lista movimientos con filtros opcionales de tipo, estado y fechas.
func (uc *MovementUseCase) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return uc.movements.List(filter)
}

// GetStock devuelve la existencia actual de un producto en un almacén
// (cero si no hay fila).
func (uc *MovementUseCase) GetStock(ctx context.Context, productCode int64, warehouseID int) (decimal.Decimal, error) {
	stock, err := uc.stocks.Get(productCode, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	return stock.Quantity, nil
}

// GetTotalStock devuelve la existencia total de un producto sumando todos
// los almacenes.
func (uc *MovementUseCase) GetTotalStock(ctx context.Context, productCode int64) (decimal.Decimal, error) {
	rows, err := uc.stocks.ListByProduct(productCode)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, s := range rows {
		total = total.Add(s.Quantity)
	}
	return total, nil
}

// StockByProduct devuelve las filas de stock de un producto, una por almacén.
func (uc *MovementUseCase) StockByProduct(ctx context.Context, productCode int64) ([]*entity.Stock, error) {
	return uc.stocks.ListByProduct(productCode)
}

// StockByWarehouse devuelve las filas de stock de un almacén.
func (uc *MovementUseCase) StockByWarehouse(ctx context.Context, warehouseID int) ([]*entity.Stock, error) {
	if !entity.IsStockWarehouse(warehouseID) {
		return nil, fmt.Errorf("%w: almacén %d", domain.ErrNotFound, warehouseID)
	}
	return uc.stocks.ListByWarehouse(warehouseID)
}

// LowStockItem producto cuyo stock total está por debajo de su umbral mínimo.
type LowStockItem struct {
	ProductCode int64
	Name        string
	UnitMeasure string
	MinStock    decimal.Decimal
	TotalStock  decimal.Decimal
}

// LowStock devuelve los productos con stock total por debajo de su mínimo.
func (uc *MovementUseCase) LowStock(ctx context.Context) ([]LowStockItem, error) {
	products, err := uc.products.List(0, 0)
	if err != nil {
		return nil, err
	}
	var items []LowStockItem
	for _, p := range products {
		total, err := uc.GetTotalStock(ctx, p.Code)
		if err != nil {
			return nil, err
		}
		if total.LessThan(p.MinStock) {
			items = append(items, LowStockItem{
				ProductCode: p.Code,
				Name:        p.Name,
				UnitMeasure: p.UnitMeasure,
				MinStock:    p.MinStock,
				TotalStock:  total,
			})
		}
	}
	return items, nil
}

// complete aplica la transición P -> C sobre un movimiento ya bloqueado:
// verifica suficiencia en origen (SAL/TRF), aplica el delta hacia delante
// y actualiza el registro. Corre dentro de la transacción del caller.
func (uc *MovementUseCase) complete(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	m *entity.Movement,
	approverID string,
	now time.Time,
) error {
	// La verificación de suficiencia ocurre aquí, no al crear: una solicitud
	// pendiente puede quedarse sin stock si otro movimiento lo consume antes.
	if m.Type == entity.MovementExit || m.Type == entity.MovementTransfer {
		origin, err := stockRepo.GetForUpdate(m.ProductCode, *m.OriginID)
		if err != nil {
			return err
		}
		if origin.Quantity.LessThan(m.Quantity) {
			return fmt.Errorf("%w: %s disponible, %s solicitado", domain.ErrInsufficientStock,
				origin.Quantity.String(), m.Quantity.String())
		}
	}
	if m.Type == entity.MovementEntry || m.Type == entity.MovementTransfer {
		if err := uc.applyDelta(stockRepo, m.ProductCode, *m.DestinationID, m.Quantity, now); err != nil {
			return err
		}
	}
	if m.Type == entity.MovementExit || m.Type == entity.MovementTransfer {
		if err := uc.applyDelta(stockRepo, m.ProductCode, *m.OriginID, m.Quantity.Neg(), now); err != nil {
			return err
		}
	}
	m.State = entity.StateCompleted
	m.ApprovedAt = &now
	m.ResponsibleID = &approverID
	return movRepo.Update(m)
}

// revertLedger aplica el delta inverso de un movimiento completado:
// resta en destino (ENT/TRF) y devuelve al origen (SAL/TRF).
func (uc *MovementUseCase) revertLedger(
	stockRepo repository.StockRepository,
	m *entity.Movement,
	now time.Time,
) error {
	if m.Type == entity.MovementEntry || m.Type == entity.MovementTransfer {
		if err := uc.applyDelta(stockRepo, m.ProductCode, *m.DestinationID, m.Quantity.Neg(), now); err != nil {
			return err
		}
	}
	if m.Type == entity.MovementExit || m.Type == entity.MovementTransfer {
		if err := uc.applyDelta(stockRepo, m.ProductCode, *m.OriginID, m.Quantity, now); err != nil {
			return err
		}
	}
	return nil
}

// applyDelta suma delta (positivo o negativo) a la fila de stock, creándola
// si no existe. El resultado nunca queda negativo: si el dato subyacente ya
// era inconsistente se ajusta a cero y se deja constancia en el log, porque
// un ajuste real indica una violación de invariante aguas arriba.
func (uc *MovementUseCase) applyDelta(
	stockRepo repository.StockRepository,
	productCode int64,
	warehouseID int,
	delta decimal.Decimal,
	now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(productCode, warehouseID)
	if err != nil {
		return err
	}
	newQty := stock.Quantity.Add(delta)
	if newQty.IsNegative() {
		uc.log.Warn().
			Int64("product_code", productCode).
			Int("warehouse_id", warehouseID).
			Str("quantity", stock.Quantity.String()).
			Str("delta", delta.String()).
			Msg("stock quedaría negativo al aplicar delta; se ajusta a cero")
		newQty = decimal.Zero
	}
	stock.Quantity = newQty
	stock.Active = true
	stock.UpdatedAt = now
	return stockRepo.Upsert(stock)
}

// lockMovement obtiene y bloquea un movimiento, traduciendo ausencia a ErrNotFound.
func lockMovement(movRepo repository.MovementRepository, id int64) (*entity.Movement, error) {
	m, err := movRepo.GetByIDForUpdate(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, id)
	}
	return m, nil
}
