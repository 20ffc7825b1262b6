package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// CreateMovementRequest body para POST /api/movements.
// origin_id/destination_id según el tipo: ENT solo destino, SAL solo origen,
// TRF ambos. direct_complete requiere rol admin.
type CreateMovementRequest struct {
	Type           string          `json:"type" validate:"required,oneof=ENT SAL TRF"`
	ProductCode    int64           `json:"product_code" validate:"required,gt=0"`
	Quantity       decimal.Decimal `json:"quantity"`
	OriginID       *int            `json:"origin_id,omitempty"`
	DestinationID  *int            `json:"destination_id,omitempty"`
	Notes          string          `json:"notes,omitempty" validate:"max=500"`
	DirectComplete bool            `json:"direct_complete,omitempty"`
}

// ListMovementsRequest query params para GET /api/movements.
type ListMovementsRequest struct {
	PageRequest
	Type  string `query:"type" validate:"omitempty,oneof=ENT SAL TRF"`
	State string `query:"state" validate:"omitempty,oneof=P C R"`
	From  string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To    string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Type          string          `json:"type"`
	ProductCode   int64           `json:"product_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	State         string          `json:"state"`
	OriginID      *int            `json:"origin_id,omitempty"`
	DestinationID *int            `json:"destination_id,omitempty"`
	RequestedBy   string          `json:"requested_by"`
	ResponsibleID *string         `json:"responsible_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	RequestedAt   time.Time       `json:"requested_at"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
}

// ToMovementResponse convierte la entidad a su representación HTTP.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:            m.ID,
		Code:          m.Code,
		Type:          string(m.Type),
		ProductCode:   m.ProductCode,
		Quantity:      m.Quantity,
		State:         string(m.State),
		OriginID:      m.OriginID,
		DestinationID: m.DestinationID,
		RequestedBy:   m.RequestedBy,
		ResponsibleID: m.ResponsibleID,
		Notes:         m.Notes,
		RequestedAt:   m.RequestedAt,
		ApprovedAt:    m.ApprovedAt,
	}
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
