package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

var _ repository.RequirementRepository = (*RequirementRepo)(nil)

const requirementColumns = `id, product_code, name, brand, quantity,
		requested_by, responsible_id, state, notes, requested_at, resolved_at`

// RequirementRepo implementación de RequirementRepository sobre PostgreSQL.
type RequirementRepo struct {
	q Querier
}

// NewRequirementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequirementRepository(q Querier) *RequirementRepo {
	return &RequirementRepo{q: q}
}

// Create persiste un requerimiento.
func (r *RequirementRepo) Create(req *entity.Requirement) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	query := `
		INSERT INTO requirements (id, product_code, name, brand, quantity,
			requested_by, responsible_id, state, notes, requested_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.ProductCode, req.Name, req.Brand, req.Quantity,
		req.RequestedBy, req.ResponsibleID, string(req.State), req.Notes,
		req.RequestedAt, req.ResolvedAt)
	if err != nil {
		return fmt.Errorf("create requirement: %w", err)
	}
	return nil
}

// GetByID obtiene un requerimiento por ID; nil si no existe.
func (r *RequirementRepo) GetByID(id string) (*entity.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements WHERE id = $1`
	req, err := scanRequirement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requirement: %w", err)
	}
	return req, nil
}

// List lista requerimientos con filtro opcional de estado.
func (r *RequirementRepo) List(filter repository.RequirementFilter) ([]*entity.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements`
	args := []any{}
	pos := 1
	if filter.State != nil {
		query += fmt.Sprintf(" WHERE state = $%d", pos)
		args = append(args, string(*filter.State))
		pos++
	}
	query += fmt.Sprintf(" ORDER BY requested_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requirement
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Update persiste estado, responsable y marca de resolución.
func (r *RequirementRepo) Update(req *entity.Requirement) error {
	query := `
		UPDATE requirements
		SET state = $2, responsible_id = $3, notes = $4, resolved_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, string(req.State), req.ResponsibleID, req.Notes, req.ResolvedAt)
	if err != nil {
		return fmt.Errorf("update requirement: %w", err)
	}
	return nil
}

// Delete elimina un requerimiento de forma permanente.
func (r *RequirementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM requirements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete requirement: %w", err)
	}
	return nil
}

func scanRequirement(row pgx.Row) (*entity.Requirement, error) {
	var req entity.Requirement
	var state string
	err := row.Scan(
		&req.ID, &req.ProductCode, &req.Name, &req.Brand, &req.Quantity,
		&req.RequestedBy, &req.ResponsibleID, &state, &req.Notes,
		&req.RequestedAt, &req.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	req.State = entity.RequirementState(state)
	return &req, nil
}
