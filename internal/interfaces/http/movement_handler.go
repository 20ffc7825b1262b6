package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdrios/almacenes-api/internal/application/dto"
	"github.com/jdrios/almacenes-api/internal/application/inventory"
	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP de movimientos (protegido).
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento (entrada, salida o traslado)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "type ENT|SAL|TRF, product_code, quantity, origin_id/destination_id según tipo"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return errorResponse(c, err)
	}
	// La compleción directa salta la cadena de aprobación: solo admin.
	if in.DirectComplete && GetRole(c) != RoleAdmin {
		return errorResponse(c, fmt.Errorf("%w: compleción directa requiere rol admin", domain.ErrForbidden))
	}
	movType, err := entity.ParseMovementType(in.Type)
	if err != nil {
		return errorResponse(c, err)
	}
	m, err := h.uc.Create(c.Context(), inventory.CreateMovementInput{
		Type:           movType,
		ProductCode:    in.ProductCode,
		Quantity:       in.Quantity,
		OriginID:       in.OriginID,
		DestinationID:  in.DestinationID,
		RequestedBy:    GetUserID(c),
		Notes:          in.Notes,
		DirectComplete: in.DirectComplete,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(m))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type   query  string  false  "ENT|SAL|TRF"
// @Param        state  query  string  false  "P|C|R"
// @Param        from   query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to     query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(in); err != nil {
		return errorResponse(c, err)
	}
	in.DefaultPage()

	filter := repository.MovementFilter{Limit: in.Limit, Offset: in.Offset}
	if in.Type != "" {
		t := entity.MovementType(in.Type)
		filter.Type = &t
	}
	if in.State != "" {
		s := entity.MovementState(in.State)
		filter.State = &s
	}
	if in.From != "" {
		from, _ := time.Parse("2006-01-02", in.From)
		filter.From = &from
	}
	if in.To != "" {
		// inclusivo: hasta el final del día
		to, _ := time.Parse("2006-01-02", in.To)
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	})
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID interno"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	m, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.ToMovementResponse(m))
}

// Complete godoc
// @Summary      Completar movimiento pendiente (aplica stock)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID interno"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/complete [post]
func (h *MovementHandler) Complete(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := h.uc.Complete(c.Context(), id, GetUserID(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento completado"})
}

// Reject godoc
// @Summary      Rechazar movimiento pendiente (sin efecto en stock)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID interno"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/reject [post]
func (h *MovementHandler) Reject(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := h.uc.Reject(c.Context(), id, GetUserID(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento rechazado"})
}

// Revert godoc
// @Summary      Revertir movimiento completado o rechazado a pendiente
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID interno"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/revert [post]
func (h *MovementHandler) Revert(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := h.uc.RevertToPending(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento revertido a pendiente"})
}

// Delete godoc
// @Summary      Eliminar movimiento (revierte stock si estaba completado)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID interno"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}

func parseMovementID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id de movimiento inválido", domain.ErrInvalidInput)
	}
	return id, nil
}
