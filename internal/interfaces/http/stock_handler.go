package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jdrios/almacenes-api/internal/application/dto"
	"github.com/jdrios/almacenes-api/internal/application/inventory"
	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// StockHandler consultas de existencias y catálogo de almacenes (protegido).
type StockHandler struct {
	uc *inventory.MovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.MovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetByProduct godoc
// @Summary      Existencias de un producto en todos los almacenes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        code  path  int  true  "código de producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/product/{code} [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	code, err := strconv.ParseInt(c.Params("code"), 10, 64)
	if err != nil || code <= 0 {
		return errorResponse(c, fmt.Errorf("%w: código de producto inválido", domain.ErrInvalidInput))
	}
	rows, err := h.uc.StockByProduct(c.Context(), code)
	if err != nil {
		return errorResponse(c, err)
	}
	total, err := h.uc.GetTotalStock(c.Context(), code)
	if err != nil {
		return errorResponse(c, err)
	}
	out := dto.ProductStockResponse{ProductCode: code, Total: total}
	for _, s := range rows {
		out.Rows = append(out.Rows, dto.ToStockRowResponse(s))
	}
	return c.JSON(out)
}

// ListByWarehouse godoc
// @Summary      Existencias de un almacén
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id de almacén (1 o 2)"
// @Success      200  {array}   dto.StockRowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/warehouse/{id} [get]
func (h *StockHandler) ListByWarehouse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return errorResponse(c, fmt.Errorf("%w: id de almacén inválido", domain.ErrInvalidInput))
	}
	rows, err := h.uc.StockByWarehouse(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	items := make([]dto.StockRowResponse, 0, len(rows))
	for _, s := range rows {
		items = append(items, dto.ToStockRowResponse(s))
	}
	return c.JSON(items)
}

// ListWarehouses godoc
// @Summary      Catálogo fijo de almacenes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *StockHandler) ListWarehouses(c *fiber.Ctx) error {
	items := make([]dto.WarehouseResponse, 0, 3)
	for _, w := range entity.Warehouses() {
		items = append(items, dto.WarehouseResponse{ID: w.ID, Name: w.Name, Virtual: w.Virtual})
	}
	return c.JSON(items)
}

// LowStock godoc
// @Summary      Productos por debajo de su stock mínimo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStock(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	items := make([]dto.LowStockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.ToLowStockItemResponse(it))
	}
	return c.JSON(items)
}
