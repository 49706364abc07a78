package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentInput parcela editada manualmente no formulário. Value chega como
// texto monetário livre ("1.234,56"); datas no formato 2006-01-02.
type InstallmentInput struct {
	Number    int    `json:"number"`
	IssueDate string `json:"issue_date,omitempty"`
	DueDate   string `json:"due_date"`
	Value     string `json:"value"`
}

// CreatePayableRequest body para POST /api/payables. TotalValue e os campos de
// juros chegam como texto monetário livre; o parsing é tolerante.
// Installments é opcional: ausente, o cronograma é gerado a partir de
// InstallmentCount e FirstDueDate.
type CreatePayableRequest struct {
	SupplierID         string             `json:"supplier_id"`
	PaymentMethodID    string             `json:"payment_method_id,omitempty"`
	BankAccountID      string             `json:"bank_account_id,omitempty"`
	LedgerAccountID    string             `json:"ledger_account_id,omitempty"`
	Carrier            string             `json:"carrier,omitempty"`
	BankDocumentNumber string             `json:"bank_document_number,omitempty"`
	IssueDate          string             `json:"issue_date"`
	FirstDueDate       string             `json:"first_due_date"`
	TotalValue         string             `json:"total_value"`
	InterestFeeValue   string             `json:"interest_fee_value,omitempty"`
	MonthlyInterestPct string             `json:"monthly_interest_pct,omitempty"`
	InterestPct        string             `json:"interest_pct,omitempty"`
	InstallmentCount   int                `json:"installment_count"`
	Installments       []InstallmentInput `json:"installments,omitempty"`
	Notes              string             `json:"notes,omitempty"`
}

// UpdatePayableRequest body para PUT /api/payables/:id. Campos nil não mudam.
type UpdatePayableRequest struct {
	SupplierID         *string            `json:"supplier_id,omitempty"`
	PaymentMethodID    *string            `json:"payment_method_id,omitempty"`
	BankAccountID      *string            `json:"bank_account_id,omitempty"`
	LedgerAccountID    *string            `json:"ledger_account_id,omitempty"`
	Carrier            *string            `json:"carrier,omitempty"`
	BankDocumentNumber *string            `json:"bank_document_number,omitempty"`
	IssueDate          *string            `json:"issue_date,omitempty"`
	TotalValue         *string            `json:"total_value,omitempty"`
	InterestFeeValue   *string            `json:"interest_fee_value,omitempty"`
	MonthlyInterestPct *string            `json:"monthly_interest_pct,omitempty"`
	InterestPct        *string            `json:"interest_pct,omitempty"`
	Installments       []InstallmentInput `json:"installments,omitempty"`
	Notes              *string            `json:"notes,omitempty"`
}

// TransitionRequest body para PATCH /api/payables/:id/installments/:number/status.
// Status aceita os sinônimos localizados ("Pago", "protestado", "pendente").
type TransitionRequest struct {
	Status          string `json:"status"`
	SettledAt       string `json:"settled_at,omitempty"`
	BankAccountID   string `json:"bank_account_id,omitempty"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// InstallmentResponse parcela na resposta da API.
type InstallmentResponse struct {
	Number         int              `json:"number"`
	IssueDate      time.Time        `json:"issue_date"`
	DueDate        time.Time        `json:"due_date"`
	Value          decimal.Decimal  `json:"value"`
	ValueFormatted string           `json:"value_formatted"`
	Status         string           `json:"status"`
	Payment        *PaymentResponse `json:"payment,omitempty"`
}

// PaymentResponse metadados de liquidação de uma parcela paga.
type PaymentResponse struct {
	SettledAt       time.Time `json:"settled_at"`
	BankAccountID   string    `json:"bank_account_id,omitempty"`
	PaymentMethodID string    `json:"payment_method_id,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// PayableResponse título completo com parcelas.
type PayableResponse struct {
	ID                 string                `json:"id"`
	Code               string                `json:"code"`
	CompanyID          string                `json:"company_id"`
	SupplierID         string                `json:"supplier_id"`
	SupplierName       string                `json:"supplier_name,omitempty"`
	PaymentMethodID    string                `json:"payment_method_id,omitempty"`
	BankAccountID      string                `json:"bank_account_id,omitempty"`
	LedgerAccountID    string                `json:"ledger_account_id,omitempty"`
	Carrier            string                `json:"carrier,omitempty"`
	BankDocumentNumber string                `json:"bank_document_number,omitempty"`
	IssueDate          time.Time             `json:"issue_date"`
	DueDate            time.Time             `json:"due_date"`
	TotalValue         decimal.Decimal       `json:"total_value"`
	TotalFormatted     string                `json:"total_formatted"`
	InterestFeeValue   decimal.Decimal       `json:"interest_fee_value"`
	MonthlyInterestPct decimal.Decimal       `json:"monthly_interest_pct"`
	InterestPct        decimal.Decimal       `json:"interest_pct"`
	Notes              string                `json:"notes,omitempty"`
	Installments       []InstallmentResponse `json:"installments"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// PayableListResponse página de títulos.
type PayableListResponse struct {
	Items []PayableResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PayableOptionsResponse opções para os selects do formulário de título.
type PayableOptionsResponse struct {
	Suppliers      []OptionDTO `json:"suppliers"`
	PaymentMethods []OptionDTO `json:"payment_methods"`
	BankAccounts   []OptionDTO `json:"bank_accounts"`
	LedgerAccounts []OptionDTO `json:"ledger_accounts"`
}
