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

var (
	_ repository.BankAccountRepository   = (*BankAccountRepo)(nil)
	_ repository.LedgerAccountRepository = (*LedgerAccountRepo)(nil)
)

// BankAccountRepo implementação de BankAccountRepository sobre PostgreSQL.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository constrói o adaptador.
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

const bankAccountColumns = `
	id, company_id, alias, bank_name, bank_code, agency, account_number,
	account_digit, active, created_at, updated_at`

// Create persiste uma conta corrente.
func (r *BankAccountRepo) Create(a *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.Alias, a.BankName, a.BankCode, a.Agency,
		a.AccountNumber, a.AccountDigit, a.Active, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID busca uma conta corrente por ID.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1`
	var a entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CompanyID, &a.Alias, &a.BankName, &a.BankCode, &a.Agency,
		&a.AccountNumber, &a.AccountDigit, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &a, nil
}

// ListByCompany lista as contas correntes da empresa.
func (r *BankAccountRepo) ListByCompany(companyID string, onlyActive bool) ([]*entity.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE company_id = $1`
	if onlyActive {
		query += ` AND active`
	}
	query += ` ORDER BY alias, bank_name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.Alias, &a.BankName, &a.BankCode,
			&a.Agency, &a.AccountNumber, &a.AccountDigit, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update atualiza uma conta corrente.
func (r *BankAccountRepo) Update(a *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts SET
			alias = $2, bank_name = $3, bank_code = $4, agency = $5,
			account_number = $6, account_digit = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Alias, a.BankName, a.BankCode, a.Agency, a.AccountNumber,
		a.AccountDigit, a.Active, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	return nil
}

// Delete remove uma conta corrente por ID.
func (r *BankAccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	return nil
}

// LedgerAccountRepo implementação de LedgerAccountRepository sobre PostgreSQL.
type LedgerAccountRepo struct {
	q Querier
}

// NewLedgerAccountRepository constrói o adaptador.
func NewLedgerAccountRepository(q Querier) *LedgerAccountRepo {
	return &LedgerAccountRepo{q: q}
}

const ledgerAccountColumns = `
	id, company_id, code, name, payment_nature, active, created_at, updated_at`

// Create persiste uma conta contábil.
func (r *LedgerAccountRepo) Create(a *entity.LedgerAccount) error {
	query := `
		INSERT INTO ledger_accounts (` + ledgerAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.Code, a.Name, a.PaymentNature, a.Active, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ledger account: %w", err)
	}
	return nil
}

// GetByID busca uma conta contábil por ID.
func (r *LedgerAccountRepo) GetByID(id string) (*entity.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE id = $1`
	var a entity.LedgerAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CompanyID, &a.Code, &a.Name, &a.PaymentNature, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger account: %w", err)
	}
	return &a, nil
}

// ListByCompany lista o plano de contas, com filtro opcional por natureza.
func (r *LedgerAccountRepo) ListByCompany(companyID, nature string, onlyActive bool) ([]*entity.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE company_id = $1`
	args := []any{companyID}
	if nature != "" {
		args = append(args, nature)
		query += fmt.Sprintf(" AND payment_nature = $%d", len(args))
	}
	if onlyActive {
		query += ` AND active`
	}
	query += ` ORDER BY code, name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerAccount
	for rows.Next() {
		var a entity.LedgerAccount
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.Code, &a.Name, &a.PaymentNature,
			&a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update atualiza uma conta contábil.
func (r *LedgerAccountRepo) Update(a *entity.LedgerAccount) error {
	query := `
		UPDATE ledger_accounts SET
			code = $2, name = $3, payment_nature = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Code, a.Name, a.PaymentNature, a.Active, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ledger account: %w", err)
	}
	return nil
}

// Delete remove uma conta contábil por ID.
func (r *LedgerAccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ledger_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger account: %w", err)
	}
	return nil
}
