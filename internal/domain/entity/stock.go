package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	StockMovementIN         = "IN"
	StockMovementOUT        = "OUT"
	StockMovementADJUSTMENT = "ADJUSTMENT"
)

// Depot depósito físico de estoque da empresa.
type Depot struct {
	ID        string
	CompanyID string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockLevel saldo atual de um item em um depósito.
type StockLevel struct {
	DepotID   string
	ItemSKU   string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}

// StockMovement registro imutável de entrada/saída/ajuste de estoque.
type StockMovement struct {
	ID            string
	TransactionID string // agrupa movimentos da mesma operação (ex.: zerar depósito)
	CompanyID     string
	DepotID       string
	ItemSKU       string
	Type          string // IN | OUT | ADJUSTMENT
	Quantity      decimal.Decimal
	Reason        string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
