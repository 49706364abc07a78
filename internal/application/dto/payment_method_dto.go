package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentMethodRequest body para POST /api/payment-methods. Discount
// chega como texto monetário/percentual livre.
type CreatePaymentMethodRequest struct {
	Code            string `json:"code,omitempty"`
	Name            string `json:"name"`
	Type            string `json:"type"` // avista | debito | credito | crediario
	Days            int    `json:"days,omitempty"`
	Discount        string `json:"discount,omitempty"`
	Installments    int    `json:"installments,omitempty"`
	BankAccountID   string `json:"bank_account_id,omitempty"`
	LedgerAccountID string `json:"ledger_account_id,omitempty"`
}

// UpdatePaymentMethodRequest body para PUT /api/payment-methods/:id.
type UpdatePaymentMethodRequest struct {
	Code            *string `json:"code,omitempty"`
	Name            *string `json:"name,omitempty"`
	Type            *string `json:"type,omitempty"`
	Days            *int    `json:"days,omitempty"`
	Discount        *string `json:"discount,omitempty"`
	Installments    *int    `json:"installments,omitempty"`
	BankAccountID   *string `json:"bank_account_id,omitempty"`
	LedgerAccountID *string `json:"ledger_account_id,omitempty"`
}

// PaymentMethodResponse meio de pagamento na resposta da API.
type PaymentMethodResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Code            string          `json:"code,omitempty"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Days            int             `json:"days"`
	Discount        decimal.Decimal `json:"discount"`
	Installments    int             `json:"installments"`
	BankAccountID   string          `json:"bank_account_id,omitempty"`
	LedgerAccountID string          `json:"ledger_account_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
