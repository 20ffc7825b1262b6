package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrios/almacenes-api/internal/application/dto"
	"github.com/jdrios/almacenes-api/internal/application/usecase"
)

// RequirementHandler maneja las peticiones HTTP de requerimientos (protegido).
type RequirementHandler struct {
	uc *usecase.RequirementUseCase
}

// NewRequirementHandler construye el handler.
func NewRequirementHandler(uc *usecase.RequirementUseCase) *RequirementHandler {
	return &RequirementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar requerimiento de material
// @Tags         requirements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequirementRequest  true  "product_code o name/brand para artículos sin catalogar"
// @Success      201   {object}  dto.RequirementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requirements [post]
func (h *RequirementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequirementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return errorResponse(c, err)
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar requerimientos
// @Tags         requirements
// @Security     Bearer
// @Produce      json
// @Param        state  query  string  false  "P|A|R"
// @Success      200  {array}  dto.RequirementResponse
// @Router       /api/requirements [get]
func (h *RequirementHandler) List(c *fiber.Ctx) error {
	var in dto.ListRequirementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(in); err != nil {
		return errorResponse(c, err)
	}
	items, err := h.uc.List(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener requerimiento por ID
// @Tags         requirements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.RequirementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requirements/{id} [get]
func (h *RequirementHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Approve godoc
// @Summary      Aprobar requerimiento pendiente
// @Tags         requirements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requirements/{id}/approve [post]
func (h *RequirementHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "requerimiento aprobado"})
}

// Reject godoc
// @Summary      Rechazar requerimiento pendiente
// @Tags         requirements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requirements/{id}/reject [post]
func (h *RequirementHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "requerimiento rechazado"})
}

// Revert godoc
// @Summary      Revertir requerimiento resuelto a pendiente
// @Tags         requirements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requirements/{id}/revert [post]
func (h *RequirementHandler) Revert(c *fiber.Ctx) error {
	if err := h.uc.RevertToPending(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "requerimiento revertido a pendiente"})
}

// Delete godoc
// @Summary      Eliminar requerimiento
// @Tags         requirements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requirements/{id} [delete]
func (h *RequirementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "requerimiento eliminado"})
}
