package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

var (
	_ repository.DepotRepository         = (*DepotRepo)(nil)
	_ repository.StockLevelRepository    = (*StockLevelRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
)

// DepotRepo implementação de DepotRepository sobre PostgreSQL.
type DepotRepo struct {
	q Querier
}

// NewDepotRepository constrói o adaptador.
func NewDepotRepository(q Querier) *DepotRepo {
	return &DepotRepo{q: q}
}

// Create persiste um depósito.
func (r *DepotRepo) Create(d *entity.Depot) error {
	query := `
		INSERT INTO depots (id, company_id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.CompanyID, d.Name, d.Active, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert depot: %w", err)
	}
	return nil
}

// GetByID busca um depósito por ID.
func (r *DepotRepo) GetByID(id string) (*entity.Depot, error) {
	query := `SELECT id, company_id, name, active, created_at, updated_at FROM depots WHERE id = $1`
	var d entity.Depot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Active, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get depot: %w", err)
	}
	return &d, nil
}

// ListByCompany lista os depósitos da empresa.
func (r *DepotRepo) ListByCompany(companyID string) ([]*entity.Depot, error) {
	query := `SELECT id, company_id, name, active, created_at, updated_at FROM depots WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list depots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Depot
	for rows.Next() {
		var d entity.Depot
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan depot: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update atualiza um depósito.
func (r *DepotRepo) Update(d *entity.Depot) error {
	query := `UPDATE depots SET name = $2, active = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Name, d.Active, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update depot: %w", err)
	}
	return nil
}

// Delete remove um depósito por ID.
func (r *DepotRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM depots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete depot: %w", err)
	}
	return nil
}

// StockLevelRepo implementação de StockLevelRepository (usável com pool ou tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// GetForUpdate trava a linha do saldo (SELECT FOR UPDATE). Saldo inexistente
// devolve nil, nil: o caller cria o registro.
func (r *StockLevelRepo) GetForUpdate(depotID, itemSKU string) (*entity.StockLevel, error) {
	query := `SELECT depot_id, item_sku, quantity, updated_at FROM stock_levels WHERE depot_id = $1 AND item_sku = $2 FOR UPDATE`
	return r.scanLevel(query, depotID, itemSKU)
}

// Upsert grava o saldo do item no depósito.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (depot_id, item_sku, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (depot_id, item_sku)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		level.DepotID, level.ItemSKU, level.Quantity, level.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// ListByDepot lista os saldos do depósito.
func (r *StockLevelRepo) ListByDepot(depotID string, limit, offset int) ([]*entity.StockLevel, error) {
	query := `
		SELECT depot_id, item_sku, quantity, updated_at
		FROM stock_levels WHERE depot_id = $1 ORDER BY item_sku LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, depotID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var l entity.StockLevel
		if err := rows.Scan(&l.DepotID, &l.ItemSKU, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *StockLevelRepo) scanLevel(query string, args ...any) (*entity.StockLevel, error) {
	var l entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.DepotID, &l.ItemSKU, &l.Quantity, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &l, nil
}

// StockMovementRepo implementação de StockMovementRepository (usável com pool ou tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const stockMovementColumns = `
	id, transaction_id, company_id, depot_id, item_sku, type, quantity, reason,
	date, created_at, created_by`

// Create persiste um movimento de estoque (registro imutável).
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TransactionID, m.CompanyID, m.DepotID, m.ItemSKU, m.Type,
		m.Quantity, m.Reason, m.Date, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByDepot lista movimentos do depósito, com filtro opcional de período.
func (r *StockMovementRepo) ListByDepot(depotID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.list("depot_id", depotID, from, to, limit, offset)
}

// ListByItem lista movimentos do item, com filtro opcional de período.
func (r *StockMovementRepo) ListByItem(itemSKU string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.list("item_sku", itemSKU, from, to, limit, offset)
}

func (r *StockMovementRepo) list(column, value string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE ` + column + ` = $1`
	args := []any{value}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.CompanyID, &m.DepotID, &m.ItemSKU,
			&m.Type, &m.Quantity, &m.Reason, &m.Date, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
