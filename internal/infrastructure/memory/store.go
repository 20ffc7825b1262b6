// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Sirve como doble de pruebas del backend PostgreSQL y como
// almacén efímero para entornos sin base de datos (STORE_DRIVER=memory).
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrios/almacenes-api/internal/domain"
	"github.com/jdrios/almacenes-api/internal/domain/entity"
	"github.com/jdrios/almacenes-api/internal/domain/repository"
)

type stockKey struct {
	productCode int64
	warehouseID int
}

// tables es el conjunto de tablas en memoria. Los repos guardan y devuelven
// copias de las entidades para imitar el comportamiento de una BD real.
type tables struct {
	products       map[int64]*entity.Product
	stocks         map[stockKey]*entity.Stock
	movements      map[int64]*entity.Movement
	requirements   map[string]*entity.Requirement
	nextMovementID int64
}

func newTables() *tables {
	return &tables{
		products:     make(map[int64]*entity.Product),
		stocks:       make(map[stockKey]*entity.Stock),
		movements:    make(map[int64]*entity.Movement),
		requirements: make(map[string]*entity.Requirement),
	}
}

// clone copia profunda de las tablas, usada como snapshot de rollback.
func (t *tables) clone() *tables {
	c := newTables()
	c.nextMovementID = t.nextMovementID
	for k, v := range t.products {
		c.products[k] = cloneProduct(v)
	}
	for k, v := range t.stocks {
		c.stocks[k] = cloneStock(v)
	}
	for k, v := range t.movements {
		c.movements[k] = cloneMovement(v)
	}
	for k, v := range t.requirements {
		c.requirements[k] = cloneRequirement(v)
	}
	return c
}

// Store almacén en memoria. Un único mutex serializa transacciones y accesos
// directos, cumpliendo el contrato de ejecución un-escritor-a-la-vez que exige
// el motor de movimientos.
type Store struct {
	mu   sync.Mutex
	data *tables
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{data: newTables()}
}

// Run implementa inventory.TxRunner: toma el lock global, ejecuta fn sobre
// repos sin bloqueo propio y, si fn falla, restaura el snapshot previo para
// emular el rollback de una transacción SQL.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.data.clone()
	err := fn(&movementTable{t: s.data}, &stockTable{t: s.data}, &productTable{t: s.data})
	if err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// Movements devuelve el repositorio de movimientos (con bloqueo por llamada).
func (s *Store) Movements() repository.MovementRepository { return &lockedMovements{s: s} }

// Stocks devuelve el repositorio de stock (con bloqueo por llamada).
func (s *Store) Stocks() repository.StockRepository { return &lockedStocks{s: s} }

// Products devuelve el repositorio de productos (con bloqueo por llamada).
func (s *Store) Products() repository.ProductRepository { return &lockedProducts{s: s} }

// Requirements devuelve el repositorio de requerimientos (con bloqueo por llamada).
func (s *Store) Requirements() repository.RequirementRepository { return &lockedRequirements{s: s} }

// ── tablas sin bloqueo (solo dentro de Run o de los wrappers) ────────────────

type movementTable struct{ t *tables }

func (r *movementTable) Create(m *entity.Movement) error {
	r.t.nextMovementID++
	m.ID = r.t.nextMovementID
	for _, existing := range r.t.movements {
		if existing.Code == m.Code {
			return entityDuplicate(m.Code)
		}
	}
	r.t.movements[m.ID] = cloneMovement(m)
	return nil
}

func (r *movementTable) GetByID(id int64) (*entity.Movement, error) {
	m, ok := r.t.movements[id]
	if !ok {
		return nil, nil
	}
	return cloneMovement(m), nil
}

// GetByIDForUpdate equivale a GetByID: el lock global del Store ya serializa.
func (r *movementTable) GetByIDForUpdate(id int64) (*entity.Movement, error) {
	return r.GetByID(id)
}

func (r *movementTable) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.t.movements {
		if filter.Type != nil && m.Type != *filter.Type {
			continue
		}
		if filter.State != nil && m.State != *filter.State {
			continue
		}
		if filter.From != nil && m.RequestedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.RequestedAt.After(*filter.To) {
			continue
		}
		out = append(out, cloneMovement(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *movementTable) ListCodes(prefix string) ([]string, error) {
	var codes []string
	for _, m := range r.t.movements {
		if strings.HasPrefix(m.Code, prefix) {
			codes = append(codes, m.Code)
		}
	}
	return codes, nil
}

func (r *movementTable) Update(m *entity.Movement) error {
	if _, ok := r.t.movements[m.ID]; !ok {
		return nil
	}
	r.t.movements[m.ID] = cloneMovement(m)
	return nil
}

func (r *movementTable) Delete(id int64) error {
	delete(r.t.movements, id)
	return nil
}

type stockTable struct{ t *tables }

func (r *stockTable) Get(productCode int64, warehouseID int) (*entity.Stock, error) {
	s, ok := r.t.stocks[stockKey{productCode, warehouseID}]
	if !ok {
		// ausencia = fila en cero, igual que el repo PostgreSQL
		return &entity.Stock{ProductCode: productCode, WarehouseID: warehouseID, Quantity: decimal.Zero, Active: true}, nil
	}
	return cloneStock(s), nil
}

func (r *stockTable) GetForUpdate(productCode int64, warehouseID int) (*entity.Stock, error) {
	return r.Get(productCode, warehouseID)
}

func (r *stockTable) Upsert(stock *entity.Stock) error {
	r.t.stocks[stockKey{stock.ProductCode, stock.WarehouseID}] = cloneStock(stock)
	return nil
}

func (r *stockTable) ListByProduct(productCode int64) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.t.stocks {
		if s.ProductCode == productCode {
			out = append(out, cloneStock(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (r *stockTable) ListByWarehouse(warehouseID int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.t.stocks {
		if s.WarehouseID == warehouseID {
			out = append(out, cloneStock(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductCode < out[j].ProductCode })
	return out, nil
}

type productTable struct{ t *tables }

func (r *productTable) GetByCode(code int64) (*entity.Product, error) {
	p, ok := r.t.products[code]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *productTable) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.t.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return paginate(out, limit, offset), nil
}

func (r *productTable) Create(p *entity.Product) error {
	if _, ok := r.t.products[p.Code]; ok {
		return entityDuplicate(p.Name)
	}
	r.t.products[p.Code] = cloneProduct(p)
	return nil
}

type requirementTable struct{ t *tables }

func (r *requirementTable) Create(req *entity.Requirement) error {
	r.t.requirements[req.ID] = cloneRequirement(req)
	return nil
}

func (r *requirementTable) GetByID(id string) (*entity.Requirement, error) {
	req, ok := r.t.requirements[id]
	if !ok {
		return nil, nil
	}
	return cloneRequirement(req), nil
}

func (r *requirementTable) List(filter repository.RequirementFilter) ([]*entity.Requirement, error) {
	var out []*entity.Requirement
	for _, req := range r.t.requirements {
		if filter.State != nil && req.State != *filter.State {
			continue
		}
		out = append(out, cloneRequirement(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *requirementTable) Update(req *entity.Requirement) error {
	if _, ok := r.t.requirements[req.ID]; !ok {
		return nil
	}
	r.t.requirements[req.ID] = cloneRequirement(req)
	return nil
}

func (r *requirementTable) Delete(id string) error {
	delete(r.t.requirements, id)
	return nil
}

// ── wrappers con bloqueo por llamada (acceso fuera de transacción) ───────────

type lockedMovements struct{ s *Store }

func (w *lockedMovements) Create(m *entity.Movement) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&movementTable{t: w.s.data}).Create(m)
}

func (w *lockedMovements) GetByID(id int64) (*entity.Movement, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&movementTable{t: w.s.data}).GetByID(id)
}

func (w *lockedMovements) GetByIDForUpdate(id int64) (*entity.Movement, error) {
	return w.GetByID(id)
}

func (w *lockedMovements) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&movementTable{t: w.s.data}).List(filter)
}

func (w *lockedMovements) ListCodes(prefix string) ([]string, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&movementTable{t: w.s.data}).ListCodes(prefix)
}

func (w *lockedMovements) Update(m *entity.Movement) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&movementTable{t: w.s.data}).Update(m)
}

func (w *lockedMovements) Delete(id int64) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&movementTable{t: w.s.data}).Delete(id)
}

type lockedStocks struct{ s *Store }

func (w *lockedStocks) Get(productCode int64, warehouseID int) (*entity.Stock, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&stockTable{t: w.s.data}).Get(productCode, warehouseID)
}

func (w *lockedStocks) GetForUpdate(productCode int64, warehouseID int) (*entity.Stock, error) {
	return w.Get(productCode, warehouseID)
}

func (w *lockedStocks) Upsert(stock *entity.Stock) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&stockTable{t: w.s.data}).Upsert(stock)
}

func (w *lockedStocks) ListByProduct(productCode int64) ([]*entity.Stock, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&stockTable{t: w.s.data}).ListByProduct(productCode)
}

func (w *lockedStocks) ListByWarehouse(warehouseID int) ([]*entity.Stock, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&stockTable{t: w.s.data}).ListByWarehouse(warehouseID)
}

type lockedProducts struct{ s *Store }

func (w *lockedProducts) GetByCode(code int64) (*entity.Product, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&productTable{t: w.s.data}).GetByCode(code)
}

func (w *lockedProducts) List(limit, offset int) ([]*entity.Product, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&productTable{t: w.s.data}).List(limit, offset)
}

func (w *lockedProducts) Create(p *entity.Product) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&productTable{t: w.s.data}).Create(p)
}

type lockedRequirements struct{ s *Store }

func (w *lockedRequirements) Create(req *entity.Requirement) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&requirementTable{t: w.s.data}).Create(req)
}

func (w *lockedRequirements) GetByID(id string) (*entity.Requirement, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&requirementTable{t: w.s.data}).GetByID(id)
}

func (w *lockedRequirements) List(filter repository.RequirementFilter) ([]*entity.Requirement, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&requirementTable{t: w.s.data}).List(filter)
}

func (w *lockedRequirements) Update(req *entity.Requirement) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&requirementTable{t: w.s.data}).Update(req)
}

func (w *lockedRequirements) Delete(id string) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return (&requirementTable{t: w.s.data}).Delete(id)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func entityDuplicate(ref string) error {
	return fmt.Errorf("%w: %s", domain.ErrDuplicate, ref)
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func cloneStock(s *entity.Stock) *entity.Stock {
	c := *s
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	c := *m
	c.OriginID = cloneIntPtr(m.OriginID)
	c.DestinationID = cloneIntPtr(m.DestinationID)
	c.ResponsibleID = cloneStrPtr(m.ResponsibleID)
	c.ApprovedAt = cloneTimePtr(m.ApprovedAt)
	return &c
}

func cloneRequirement(r *entity.Requirement) *entity.Requirement {
	c := *r
	if r.ProductCode != nil {
		v := *r.ProductCode
		c.ProductCode = &v
	}
	c.ResponsibleID = cloneStrPtr(r.ResponsibleID)
	c.ResolvedAt = cloneTimePtr(r.ResolvedAt)
	return &c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
