package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, code, type, product_code, quantity, state,
		origin_id, destination_id, requested_by, responsible_id, notes,
		requested_at, approved_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el movimiento; el ID lo asigna la secuencia de la tabla.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (code, type, product_code, quantity, state,
			origin_id, destination_id, requested_by, responsible_id, notes,
			requested_at, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.Code, string(m.Type), m.ProductCode, m.Quantity, string(m.State),
		m.OriginID, m.DestinationID, m.RequestedBy, m.ResponsibleID, m.Notes,
		m.RequestedAt, m.ApprovedAt,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	return r.get(id, false)
}

// GetByIDForUpdate obtiene el movimiento y bloquea su fila (SELECT FOR UPDATE).
func (r *MovementRepo) GetByIDForUpdate(id int64) (*entity.Movement, error) {
	return r.get(id, true)
}

func (r *MovementRepo) get(id int64, forUpdate bool) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	row := r.q.QueryRow(context.Background(), query, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos aplicando filtros opcionales de tipo, estado y fechas.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, string(*filter.Type))
		pos++
	}
	if filter.State != nil {
		query += fmt.Sprintf(" AND state = $%d", pos)
		args = append(args, string(*filter.State))
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND requested_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND requested_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListCodes devuelve los códigos existentes que empiezan por el prefijo dado.
func (r *MovementRepo) ListCodes(prefix string) ([]string, error) {
	query := `SELECT code FROM movements WHERE code LIKE $1 || '%'`
	rows, err := r.q.Query(context.Background(), query, prefix)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Update persiste estado, responsable y marca de aprobación del movimiento.
func (r *MovementRepo) Update(m *entity.Movement) error {
	query := `
		UPDATE movements
		SET state = $2, responsible_id = $3, notes = $4, approved_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, string(m.State), m.ResponsibleID, m.Notes, m.ApprovedAt)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina el movimiento de forma permanente.
func (r *MovementRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var typeCode, stateCode string
	err := row.Scan(
		&m.ID, &m.Code, &typeCode, &m.ProductCode, &m.Quantity, &stateCode,
		&m.OriginID, &m.DestinationID, &m.RequestedBy, &m.ResponsibleID, &m.Notes,
		&m.RequestedAt, &m.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	if m.Type, err = entity.ParseMovementType(typeCode); err != nil {
		return nil, err
	}
	if m.State, err = entity.ParseMovementState(stateCode); err != nil {
		return nil, err
	}
	return &m, nil
}
