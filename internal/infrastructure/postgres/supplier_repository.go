package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `
	id, company_id, legal_name, trade_name, cnpj, email, phone, mobile, notes,
	active, created_at, updated_at`

// Create persiste um fornecedor. CNPJ duplicado na empresa é ErrDuplicate.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CompanyID, s.LegalName, s.TradeName, nullIfEmpty(s.CNPJ),
		s.Email, s.Phone, s.Mobile, s.Notes, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID busca um fornecedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCompanyAndDocument busca pelo CNPJ dentro da empresa.
func (r *SupplierRepo) GetByCompanyAndDocument(companyID, document string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE company_id = $1 AND cnpj = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, document))
}

// ListByCompany lista fornecedores da empresa, ordenados pelo nome de exibição.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers WHERE company_id = $1
		ORDER BY COALESCE(NULLIF(trade_name, ''), legal_name)
		LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// SearchByName busca por fragmento de nome, sem distinguir maiúsculas nem
// acentos (extensão unaccent).
func (r *SupplierRepo) SearchByName(companyID, search string, limit int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE company_id = $1
		  AND (unaccent(legal_name) ILIKE unaccent($2) OR unaccent(trade_name) ILIKE unaccent($2))
		ORDER BY COALESCE(NULLIF(trade_name, ''), legal_name)
		LIMIT $3`
	return r.list(query, companyID, "%"+search+"%", limit)
}

// Update atualiza um fornecedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET
			legal_name = $2, trade_name = $3, cnpj = $4, email = $5, phone = $6,
			mobile = $7, notes = $8, active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.LegalName, s.TradeName, nullIfEmpty(s.CNPJ), s.Email, s.Phone,
		s.Mobile, s.Notes, s.Active, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete remove um fornecedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) list(query string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, serr := scanSupplier(rows)
		if serr != nil {
			return nil, serr
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) scanOne(row pgx.Row) (*entity.Supplier, error) {
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var cnpj *string
	err := row.Scan(&s.ID, &s.CompanyID, &s.LegalName, &s.TradeName, &cnpj,
		&s.Email, &s.Phone, &s.Mobile, &s.Notes, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.CNPJ = deref(cnpj)
	return &s, nil
}
