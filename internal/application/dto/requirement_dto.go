package dto

import (
	"time"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
)

// CreateRequirementRequest body para POST /api/requirements.
// product_code para artículos ya catalogados; name/brand en texto libre
// cuando el artículo aún no existe en el catálogo.
type CreateRequirementRequest struct {
	ProductCode *int64 `json:"product_code,omitempty" validate:"omitempty,gt=0"`
	Name        string `json:"name,omitempty" validate:"max=200"`
	Brand       string `json:"brand,omitempty" validate:"max=100"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Notes       string `json:"notes,omitempty" validate:"max=500"`
}

// ListRequirementsRequest query params para GET /api/requirements.
type ListRequirementsRequest struct {
	PageRequest
	State string `query:"state" validate:"omitempty,oneof=P A R"`
}

// RequirementResponse representación HTTP de un requerimiento.
type RequirementResponse struct {
	ID            string     `json:"id"`
	ProductCode   *int64     `json:"product_code,omitempty"`
	Name          string     `json:"name,omitempty"`
	Brand         string     `json:"brand,omitempty"`
	Quantity      int        `json:"quantity"`
	RequestedBy   string     `json:"requested_by"`
	ResponsibleID *string    `json:"responsible_id,omitempty"`
	State         string     `json:"state"`
	Notes         string     `json:"notes,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ToRequirementResponse convierte la entidad a su representación HTTP.
func ToRequirementResponse(r *entity.Requirement) *RequirementResponse {
	if r == nil {
		return nil
	}
	return &RequirementResponse{
		ID:            r.ID,
		ProductCode:   r.ProductCode,
		Name:          r.Name,
		Brand:         r.Brand,
		Quantity:      r.Quantity,
		RequestedBy:   r.RequestedBy,
		ResponsibleID: r.ResponsibleID,
		State:         string(r.State),
		Notes:         r.Notes,
		RequestedAt:   r.RequestedAt,
		ResolvedAt:    r.ResolvedAt,
	}
}
