package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

var _ repository.PayableRepository = (*PayableRepo)(nil)

// PayableRepo implementação de PayableRepository sobre PostgreSQL. Título e
// parcelas são persistidos em payable_titles / payable_installments e sempre
// lidos como agregado.
type PayableRepo struct {
	q Querier
}

// NewPayableRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

const payableColumns = `
	id, code, company_id, supplier_id, payment_method_id, bank_account_id,
	ledger_account_id, carrier, bank_document_number, issue_date, due_date,
	total_value, interest_fee_value, monthly_interest_percent, interest_percent,
	notes, created_at, updated_at`

// Create persiste o título e todas as parcelas.
func (r *PayableRepo) Create(p *entity.PayableTitle) error {
	ctx := context.Background()
	query := `
		INSERT INTO payable_titles (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Code, p.CompanyID, p.SupplierID,
		nullIfEmpty(p.PaymentMethodID), nullIfEmpty(p.BankAccountID), nullIfEmpty(p.LedgerAccountID),
		p.Carrier, p.BankDocumentNumber, p.IssueDate, p.DueDate,
		p.TotalValue, p.InterestFeeValue, p.MonthlyInterestPercent, p.InterestPercent,
		p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payable: %w", err)
	}
	return r.insertInstallments(ctx, p.ID, p.Installments)
}

// GetByID carrega o agregado completo.
func (r *PayableRepo) GetByID(id string) (*entity.PayableTitle, error) {
	query := `SELECT ` + payableColumns + ` FROM payable_titles WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCode carrega o agregado pelo código sequencial da empresa.
func (r *PayableRepo) GetByCode(companyID, code string) (*entity.PayableTitle, error) {
	query := `SELECT ` + payableColumns + ` FROM payable_titles WHERE company_id = $1 AND code = $2`
	return r.getOne(query, companyID, code)
}

// ListByCompany lista títulos da empresa com filtros e paginação. O filtro de
// status olha para as parcelas: basta uma parcela no status pedido.
func (r *PayableRepo) ListByCompany(companyID string, filter repository.PayableFilter, limit, offset int) ([]*entity.PayableTitle, error) {
	ctx := context.Background()
	query := `SELECT ` + payableColumns + ` FROM payable_titles WHERE company_id = $1`
	args := []any{companyID}

	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		query += fmt.Sprintf(" AND supplier_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM payable_installments i WHERE i.payable_id = payable_titles.id AND i.status = $%d)", len(args))
	}
	if filter.DueFrom != nil {
		args = append(args, *filter.DueFrom)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}
	if filter.DueTo != nil {
		args = append(args, *filter.DueTo)
		query += fmt.Sprintf(" AND due_date <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (code ILIKE $%d OR bank_document_number ILIKE $%d OR notes ILIKE $%d)", len(args), len(args), len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY due_date, code LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()

	var list []*entity.PayableTitle
	for rows.Next() {
		p, serr := scanPayable(rows)
		if serr != nil {
			return nil, serr
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		installments, ierr := r.loadInstallments(ctx, p.ID)
		if ierr != nil {
			return nil, ierr
		}
		p.Installments = installments
	}
	return list, nil
}

// Update regrava o título e substitui o conjunto de parcelas pelo novo.
func (r *PayableRepo) Update(p *entity.PayableTitle) error {
	ctx := context.Background()
	query := `
		UPDATE payable_titles SET
			supplier_id = $2, payment_method_id = $3, bank_account_id = $4,
			ledger_account_id = $5, carrier = $6, bank_document_number = $7,
			issue_date = $8, due_date = $9, total_value = $10,
			interest_fee_value = $11, monthly_interest_percent = $12,
			interest_percent = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.SupplierID,
		nullIfEmpty(p.PaymentMethodID), nullIfEmpty(p.BankAccountID), nullIfEmpty(p.LedgerAccountID),
		p.Carrier, p.BankDocumentNumber, p.IssueDate, p.DueDate, p.TotalValue,
		p.InterestFeeValue, p.MonthlyInterestPercent, p.InterestPercent,
		p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM payable_installments WHERE payable_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clear installments: %w", err)
	}
	return r.insertInstallments(ctx, p.ID, p.Installments)
}

// Delete remove o título; as parcelas caem por ON DELETE CASCADE.
func (r *PayableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payable_titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payable: %w", err)
	}
	return nil
}

// NextSequentialCode incrementa a sequência da empresa/ano de forma atômica
// e devolve o código CP-YYYY-NNNNN.
func (r *PayableRepo) NextSequentialCode(companyID string, year int) (string, error) {
	query := `
		INSERT INTO payable_code_sequences (company_id, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, year)
		DO UPDATE SET last_value = payable_code_sequences.last_value + 1
		RETURNING last_value`
	var n int
	if err := r.q.QueryRow(context.Background(), query, companyID, year).Scan(&n); err != nil {
		return "", fmt.Errorf("next payable code: %w", err)
	}
	return fmt.Sprintf("CP-%d-%05d", year, n), nil
}

// ListAgendaItems projeta as parcelas da empresa como itens de agenda, com o
// fornecedor desnormalizado.
func (r *PayableRepo) ListAgendaItems(ctx context.Context, companyID string, dueFrom, dueTo *time.Time) ([]finance.AgendaItem, error) {
	query := `
		SELECT t.id, t.code, i.number,
		       COALESCE(NULLIF(s.trade_name, ''), s.legal_name) AS party_name,
		       COALESCE(s.cnpj, '') AS document,
		       i.due_date, i.value, i.status
		FROM payable_installments i
		JOIN payable_titles t ON t.id = i.payable_id
		JOIN suppliers s ON s.id = t.supplier_id
		WHERE t.company_id = $1`
	args := []any{companyID}
	if dueFrom != nil {
		args = append(args, *dueFrom)
		query += fmt.Sprintf(" AND i.due_date >= $%d", len(args))
	}
	if dueTo != nil {
		args = append(args, *dueTo)
		query += fmt.Sprintf(" AND i.due_date <= $%d", len(args))
	}
	query += " ORDER BY i.due_date, t.code, i.number"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agenda items: %w", err)
	}
	defer rows.Close()

	var items []finance.AgendaItem
	for rows.Next() {
		var item finance.AgendaItem
		var status string
		if err := rows.Scan(&item.PayableID, &item.PayableCode, &item.InstallmentNumber,
			&item.PartyName, &item.Document, &item.DueDate, &item.Value, &status); err != nil {
			return nil, fmt.Errorf("scan agenda item: %w", err)
		}
		item.Status = entity.Status(status)
		items = append(items, item)
	}
	return items, rows.Err()
}

// SummarizeAgenda agrega os buckets direto no banco, com a mesma semântica da
// agregação em memória: janela inclusiva para upcoming e mês-calendário de
// now para paidThisMonth.
func (r *PayableRepo) SummarizeAgenda(ctx context.Context, companyID string, periodStart, periodEnd, now time.Time) (finance.AgendaSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(i.value) FILTER (WHERE i.status IN ('pending','protest')
				AND i.due_date >= $2::date AND i.due_date < ($3::date + 1)), 0),
			COALESCE(COUNT(*)     FILTER (WHERE i.status IN ('pending','protest')
				AND i.due_date >= $2::date AND i.due_date < ($3::date + 1)), 0),
			COALESCE(SUM(i.value) FILTER (WHERE i.status = 'pending'), 0),
			COALESCE(COUNT(*)     FILTER (WHERE i.status = 'pending'), 0),
			COALESCE(SUM(i.value) FILTER (WHERE i.status = 'protest'), 0),
			COALESCE(COUNT(*)     FILTER (WHERE i.status = 'protest'), 0),
			COALESCE(SUM(i.value) FILTER (WHERE i.status = 'cancelled'), 0),
			COALESCE(COUNT(*)     FILTER (WHERE i.status = 'cancelled'), 0),
			COALESCE(SUM(i.value) FILTER (WHERE i.status = 'paid'
				AND date_trunc('month', i.due_date) = date_trunc('month', $4::date)), 0),
			COALESCE(COUNT(*)     FILTER (WHERE i.status = 'paid'
				AND date_trunc('month', i.due_date) = date_trunc('month', $4::date)), 0)
		FROM payable_installments i
		JOIN payable_titles t ON t.id = i.payable_id
		WHERE t.company_id = $1`

	s := finance.EmptyAgendaSummary()
	err := r.q.QueryRow(ctx, query, companyID, periodStart, periodEnd, now).Scan(
		&s.Upcoming.TotalValue, &s.Upcoming.Installments,
		&s.Pending.TotalValue, &s.Pending.Installments,
		&s.Protest.TotalValue, &s.Protest.Installments,
		&s.Cancelled.TotalValue, &s.Cancelled.Installments,
		&s.PaidThisMonth.TotalValue, &s.PaidThisMonth.Installments,
	)
	if err != nil {
		return finance.EmptyAgendaSummary(), fmt.Errorf("summarize agenda: %w", err)
	}
	return s, nil
}

func (r *PayableRepo) getOne(query string, args ...any) (*entity.PayableTitle, error) {
	ctx := context.Background()
	row := r.q.QueryRow(ctx, query, args...)
	p, err := scanPayable(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	installments, err := r.loadInstallments(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Installments = installments
	return p, nil
}

func (r *PayableRepo) insertInstallments(ctx context.Context, payableID string, installments []entity.Installment) error {
	query := `
		INSERT INTO payable_installments (
			payable_id, number, issue_date, due_date, value, bank_account_id,
			ledger_account_id, status, settled_at, payment_bank_account_id,
			payment_method_id, payment_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, inst := range installments {
		var settledAt *time.Time
		var payBank, payMethod, payNotes *string
		if inst.Payment != nil {
			t := inst.Payment.SettledAt
			settledAt = &t
			payBank = nullIfEmpty(inst.Payment.BankAccountID)
			payMethod = nullIfEmpty(inst.Payment.PaymentMethodID)
			payNotes = nullIfEmpty(inst.Payment.Notes)
		}
		_, err := r.q.Exec(ctx, query,
			payableID, inst.Number, inst.IssueDate, inst.DueDate, inst.Value,
			nullIfEmpty(inst.BankAccountID), nullIfEmpty(inst.LedgerAccountID),
			string(inst.Status), settledAt, payBank, payMethod, payNotes,
		)
		if err != nil {
			return fmt.Errorf("insert installment %d: %w", inst.Number, err)
		}
	}
	return nil
}

func (r *PayableRepo) loadInstallments(ctx context.Context, payableID string) ([]entity.Installment, error) {
	query := `
		SELECT number, issue_date, due_date, value, bank_account_id,
		       ledger_account_id, status, settled_at, payment_bank_account_id,
		       payment_method_id, payment_notes
		FROM payable_installments WHERE payable_id = $1 ORDER BY number`
	rows, err := r.q.Query(ctx, query, payableID)
	if err != nil {
		return nil, fmt.Errorf("load installments: %w", err)
	}
	defer rows.Close()

	var list []entity.Installment
	for rows.Next() {
		var inst entity.Installment
		var status string
		var bankID, ledgerID, payBank, payMethod, payNotes *string
		var settledAt *time.Time
		if err := rows.Scan(&inst.Number, &inst.IssueDate, &inst.DueDate, &inst.Value,
			&bankID, &ledgerID, &status, &settledAt, &payBank, &payMethod, &payNotes); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		inst.BankAccountID = deref(bankID)
		inst.LedgerAccountID = deref(ledgerID)
		inst.Status = entity.Status(status)
		if settledAt != nil {
			inst.Payment = &entity.PaymentMetadata{
				SettledAt:       *settledAt,
				BankAccountID:   deref(payBank),
				PaymentMethodID: deref(payMethod),
				Notes:           deref(payNotes),
			}
		}
		list = append(list, inst)
	}
	return list, rows.Err()
}

func scanPayable(row pgx.Row) (*entity.PayableTitle, error) {
	var p entity.PayableTitle
	var methodID, bankID, ledgerID *string
	err := row.Scan(
		&p.ID, &p.Code, &p.CompanyID, &p.SupplierID, &methodID, &bankID, &ledgerID,
		&p.Carrier, &p.BankDocumentNumber, &p.IssueDate, &p.DueDate,
		&p.TotalValue, &p.InterestFeeValue, &p.MonthlyInterestPercent, &p.InterestPercent,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PaymentMethodID = deref(methodID)
	p.BankAccountID = deref(bankID)
	p.LedgerAccountID = deref(ledgerID)
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
