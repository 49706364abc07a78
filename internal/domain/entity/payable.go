package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status canônico de uma parcela. Todo status persistido ou devolvido pela
// API é um destes quatro valores; texto livre vindo de fora passa antes por
// finance.CanonicalStatus.
type Status string

const (
	StatusPending   Status = "pending"   // em aberto (default operacional)
	StatusPaid      Status = "paid"      // liquidada
	StatusCancelled Status = "cancelled" // cancelada, sai dos agregados em aberto
	StatusProtest   Status = "protest"   // em protesto (contestação formal)
)

// AllStatuses lista os status canônicos, na ordem de exibição dos painéis.
var AllStatuses = []Status{StatusPending, StatusPaid, StatusCancelled, StatusProtest}

// PayableTitle é um título de contas a pagar: uma obrigação faturada contra
// um fornecedor, dividida em uma ou mais parcelas.
type PayableTitle struct {
	ID                     string
	Code                   string // sequencial CP-AAAA-NNNNN
	CompanyID              string
	SupplierID             string
	BankAccountID          string
	LedgerAccountID        string
	PaymentMethodID        string
	Carrier                string
	BankDocumentNumber     string
	IssueDate              time.Time
	DueDate                time.Time // vencimento da primeira parcela
	TotalValue             decimal.Decimal
	InterestFeeValue       decimal.Decimal
	MonthlyInterestPercent decimal.Decimal
	InterestPercent        decimal.Decimal
	Notes                  string
	Installments           []Installment
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Installment é uma parcela do título. Number é 1-based e contíguo dentro do
// título no momento da criação; só é renumerado na remoção explícita de uma
// parcela. Status muda apenas via finance.ApplyTransition.
type Installment struct {
	Number          int
	IssueDate       time.Time
	DueDate         time.Time
	Value           decimal.Decimal
	BankAccountID   string
	LedgerAccountID string
	Status          Status
	Payment         *PaymentMetadata // preenchido ao liquidar; nil nos demais status
}

// PaymentMetadata dados registrados quando a parcela é liquidada.
type PaymentMetadata struct {
	SettledAt       time.Time
	BankAccountID   string
	PaymentMethodID string
	Notes           string
}
