package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). La ausencia de fila se devuelve como fila en cero.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia de un producto en un almacén (cero si no hay fila).
func (r *StockRepo) Get(productCode int64, warehouseID int) (*entity.Stock, error) {
	return r.get(productCode, warehouseID, false)
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productCode int64, warehouseID int) (*entity.Stock, error) {
	return r.get(productCode, warehouseID, true)
}

func (r *StockRepo) get(productCode int64, warehouseID int, forUpdate bool) (*entity.Stock, error) {
	query := `
		SELECT product_code, warehouse_id, quantity, active, updated_at
		FROM stock WHERE product_code = $1 AND warehouse_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productCode, warehouseID).Scan(
		&s.ProductCode, &s.WarehouseID, &s.Quantity, &s.Active, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductCode: productCode, WarehouseID: warehouseID, Quantity: decimal.Zero, Active: true}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y almacén).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_code, warehouse_id, quantity, active, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_code, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, active = EXCLUDED.active, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductCode, stock.WarehouseID, stock.Quantity, stock.Active)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProduct devuelve las filas de stock de un producto, una por almacén.
func (r *StockRepo) ListByProduct(productCode int64) ([]*entity.Stock, error) {
	query := `
		SELECT product_code, warehouse_id, quantity, active, updated_at
		FROM stock WHERE product_code = $1 ORDER BY warehouse_id`
	return r.list(query, productCode)
}

// ListByWarehouse devuelve las filas de stock de un almacén.
func (r *StockRepo) ListByWarehouse(warehouseID int) ([]*entity.Stock, error) {
	query := `
		SELECT product_code, warehouse_id, quantity, active, updated_at
		FROM stock WHERE warehouse_id = $1 ORDER BY product_code`
	return r.list(query, warehouseID)
}

func (r *StockRepo) list(query string, arg any) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductCode, &s.WarehouseID, &s.Quantity, &s.Active, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
