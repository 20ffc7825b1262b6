package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jdrios/almacenes-api/internal/application/dto"
	"github.com/jdrios/almacenes-api/internal/application/usecase"
	"github.com/jdrios/almacenes-api/internal/domain"
)

// ProductHandler consultas del catálogo de productos (protegido, solo lectura).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos del catálogo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	items, err := h.uc.List(c.Context(), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

// GetByCode godoc
// @Summary      Obtener producto por código
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        code  path  int  true  "código de producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	code, err := strconv.ParseInt(c.Params("code"), 10, 64)
	if err != nil || code <= 0 {
		return errorResponse(c, fmt.Errorf("%w: código de producto inválido", domain.ErrInvalidInput))
	}
	resp, err := h.uc.GetByCode(c.Context(), code)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
