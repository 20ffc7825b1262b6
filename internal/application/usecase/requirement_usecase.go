package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jdrios/almacenes-api/internal/application/dto"
	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

// RequirementUseCase flujo de aprobación de requerimientos de material.
// Ciclo de tres estados (P -> A, P -> R, y vuelta a P) paralelo al de
// movimientos pero sin ningún efecto sobre el stock.
type RequirementUseCase struct {
	repo     repository.RequirementRepository
	products repository.ProductRepository
}

// NewRequirementUseCase construye el caso de uso.
func NewRequirementUseCase(repo repository.RequirementRepository, products repository.ProductRepository) *RequirementUseCase {
	return &RequirementUseCase{repo: repo, products: products}
}

// Create registra un requerimiento pendiente. Acepta referencia a producto
// catalogado o nombre/marca en texto libre para artículos sin catalogar.
func (uc *RequirementUseCase) Create(ctx context.Context, requesterID string, in dto.CreateRequirementRequest) (*dto.RequirementResponse, error) {
	if in.ProductCode == nil && in.Name == "" {
		return nil, fmt.Errorf("%w: se requiere producto catalogado o nombre del artículo", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.ProductCode != nil {
		product, err := uc.products.GetByCode(*in.ProductCode)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, *in.ProductCode)
		}
	}
	req := &entity.Requirement{
		ID:          uuid.New().String(),
		ProductCode: in.ProductCode,
		Name:        in.Name,
		Brand:       in.Brand,
		Quantity:    in.Quantity,
		RequestedBy: requesterID,
		State:       entity.RequirementPending,
		Notes:       in.Notes,
		RequestedAt: time.Now(),
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}
	return dto.ToRequirementResponse(req), nil
}

// Approve transiciona un requerimiento pendiente a aprobado.
func (uc *RequirementUseCase) Approve(ctx context.Context, id, approverID string) error {
	return uc.resolve(id, approverID, entity.RequirementApproved)
}

// Reject transiciona un requerimiento pendiente a rechazado.
func (uc *RequirementUseCase) Reject(ctx context.Context, id, approverID string) error {
	return uc.resolve(id, approverID, entity.RequirementRejected)
}

func (uc *RequirementUseCase) resolve(id, approverID string, target entity.RequirementState) error {
	req, err := uc.getExisting(id)
	if err != nil {
		return err
	}
	if req.State != entity.RequirementPending {
		return fmt.Errorf("%w: resolver requiere estado pendiente (actual %s)", domain.ErrInvalidTransition, req.State)
	}
	now := time.Now()
	req.State = target
	req.ResolvedAt = &now
	req.ResponsibleID = &approverID
	return uc.repo.Update(req)
}

// RevertToPending devuelve un requerimiento aprobado o rechazado a pendiente.
func (uc *RequirementUseCase) RevertToPending(ctx context.Context, id string) error {
	req, err := uc.getExisting(id)
	if err != nil {
		return err
	}
	if req.State != entity.RequirementApproved && req.State != entity.RequirementRejected {
		return fmt.Errorf("%w: revertir requiere estado aprobado o rechazado", domain.ErrInvalidTransition)
	}
	req.State = entity.RequirementPending
	req.ResolvedAt = nil
	req.ResponsibleID = nil
	return uc.repo.Update(req)
}

// Delete elimina un requerimiento de forma permanente, desde cualquier estado.
func (uc *RequirementUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getExisting(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// GetByID obtiene un requerimiento por ID.
func (uc *RequirementUseCase) GetByID(ctx context.Context, id string) (*dto.RequirementResponse, error) {
	req, err := uc.getExisting(id)
	if err != nil {
		return nil, err
	}
	return dto.ToRequirementResponse(req), nil
}

// List lista requerimientos con filtro opcional de estado.
func (uc *RequirementUseCase) List(ctx context.Context, in dto.ListRequirementsRequest) ([]dto.RequirementResponse, error) {
	in.DefaultPage()
	filter := repository.RequirementFilter{Limit: in.Limit, Offset: in.Offset}
	if in.State != "" {
		state := entity.RequirementState(in.State)
		if !state.Valid() {
			return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.State)
		}
		filter.State = &state
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequirementResponse, 0, len(list))
	for _, req := range list {
		items = append(items, *dto.ToRequirementResponse(req))
	}
	return items, nil
}

func (uc *RequirementUseCase) getExisting(id string) (*entity.Requirement, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: requerimiento %s", domain.ErrNotFound, id)
	}
	return req, nil
}
