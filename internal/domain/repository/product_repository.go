package repository

import "github.com/jdrios/almacenes-api/internal/domain/entity"

// ProductRepository define el puerto de consulta del catálogo de productos.
// El catálogo lo administra un sistema externo; aquí solo se lee, salvo
// Create, que usan los seeds y los tests.
type ProductRepository interface {
	// GetByCode devuelve nil si el producto no existe.
	GetByCode(code int64) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Create(product *entity.Product) error
}
