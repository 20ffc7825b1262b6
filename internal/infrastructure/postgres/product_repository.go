package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `code, name, unit_measure, min_stock, brand, category,
		location_principal, location_instrumentacion, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable
// con pool o tx). El catálogo lo escribe un sistema externo; Create existe
// para seeds y tests.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByCode obtiene un producto por su código; nil si no existe.
func (r *ProductRepo) GetByCode(code int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&p.Code, &p.Name, &p.UnitMeasure, &p.MinStock, &p.Brand, &p.Category,
		&p.LocationPrincipal, &p.LocationInstrumentacion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación. limit <= 0 devuelve todo el catálogo.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY code`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.UnitMeasure, &p.MinStock, &p.Brand, &p.Category,
			&p.LocationPrincipal, &p.LocationInstrumentacion, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persiste un producto (seeds/tests).
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (code, name, unit_measure, min_stock, brand, category,
			location_principal, location_instrumentacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		p.Code, p.Name, p.UnitMeasure, p.MinStock, p.Brand, p.Category,
		p.LocationPrincipal, p.LocationInstrumentacion)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: producto %d", domain.ErrDuplicate, p.Code)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}
