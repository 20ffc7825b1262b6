package usecase

import (
	"context"
	"fmt"

	"github.com/jdrios/almacenes-api/internal/application/dto"
	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

// ProductUseCase consulta del catálogo de productos. Solo lectura: las altas
// y ediciones las hace el sistema de catálogo externo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByCode obtiene un producto por su código numérico.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, code)
	}
	return dto.ToProductResponse(product), nil
}

// List lista productos del catálogo con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items, nil
}
