package dto

import "time"

// CreateBankAccountRequest body para POST /api/bank-accounts.
type CreateBankAccountRequest struct {
	Alias         string `json:"alias,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	Agency        string `json:"agency,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountDigit  string `json:"account_digit,omitempty"`
}

// UpdateBankAccountRequest body para PUT /api/bank-accounts/:id.
type UpdateBankAccountRequest struct {
	Alias         *string `json:"alias,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	BankCode      *string `json:"bank_code,omitempty"`
	Agency        *string `json:"agency,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	AccountDigit  *string `json:"account_digit,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// BankAccountResponse conta corrente na resposta da API.
type BankAccountResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Alias         string    `json:"alias,omitempty"`
	BankName      string    `json:"bank_name,omitempty"`
	BankCode      string    `json:"bank_code,omitempty"`
	Agency        string    `json:"agency,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	AccountDigit  string    `json:"account_digit,omitempty"`
	Label         string    `json:"label"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateLedgerAccountRequest body para POST /api/ledger-accounts.
type CreateLedgerAccountRequest struct {
	Code          string `json:"code,omitempty"`
	Name          string `json:"name"`
	PaymentNature string `json:"payment_nature"` // contas_pagar | contas_receber
}

// UpdateLedgerAccountRequest body para PUT /api/ledger-accounts/:id.
type UpdateLedgerAccountRequest struct {
	Code          *string `json:"code,omitempty"`
	Name          *string `json:"name,omitempty"`
	PaymentNature *string `json:"payment_nature,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// LedgerAccountResponse conta contábil na resposta da API.
type LedgerAccountResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Code          string    `json:"code,omitempty"`
	Name          string    `json:"name"`
	PaymentNature string    `json:"payment_nature"`
	Label         string    `json:"label"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
