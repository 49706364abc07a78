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

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementação de PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository constrói o adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

const paymentMethodColumns = `
	id, company_id, code, name, type, days, discount, installments,
	bank_account_id, ledger_account_id, created_at, updated_at`

// Create persiste uma forma de pagamento.
func (r *PaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.Code, m.Name, m.Type, m.Days, m.Discount, m.Installments,
		nullIfEmpty(m.BankAccountID), nullIfEmpty(m.LedgerAccountID), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID busca uma forma de pagamento por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1`
	m, err := scanPaymentMethod(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return m, nil
}

// ListByCompany lista as formas de pagamento da empresa.
func (r *PaymentMethodRepo) ListByCompany(companyID string) ([]*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		m, serr := scanPaymentMethod(rows)
		if serr != nil {
			return nil, serr
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update atualiza uma forma de pagamento.
func (r *PaymentMethodRepo) Update(m *entity.PaymentMethod) error {
	query := `
		UPDATE payment_methods SET
			code = $2, name = $3, type = $4, days = $5, discount = $6,
			installments = $7, bank_account_id = $8, ledger_account_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Code, m.Name, m.Type, m.Days, m.Discount, m.Installments,
		nullIfEmpty(m.BankAccountID), nullIfEmpty(m.LedgerAccountID), m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// Delete remove uma forma de pagamento por ID.
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}

func scanPaymentMethod(row pgx.Row) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	var bankID, ledgerID *string
	err := row.Scan(&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Type, &m.Days,
		&m.Discount, &m.Installments, &bankID, &ledgerID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.BankAccountID = deref(bankID)
	m.LedgerAccountID = deref(ledgerID)
	return &m, nil
}
