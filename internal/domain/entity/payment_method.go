package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de meio de pagamento aceitos na configuração financeira.
const (
	PaymentTypeAVista    = "avista"
	PaymentTypeDebito    = "debito"
	PaymentTypeCredito   = "credito"
	PaymentTypeCrediario = "crediario"
)

// PaymentMethod meio de pagamento configurado por empresa.
type PaymentMethod struct {
	ID              string
	CompanyID       string
	Code            string
	Name            string
	Type            string // avista | debito | credito | crediario
	Days            int    // prazo padrão em dias para compensação
	Discount        decimal.Decimal
	Installments    int // máximo de parcelas permitido
	BankAccountID   string
	LedgerAccountID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidPaymentType verifica o tipo contra o conjunto fechado aceito.
func ValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeAVista, PaymentTypeDebito, PaymentTypeCredito, PaymentTypeCrediario:
		return true
	}
	return false
}
