package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterStockMovementRequest body para POST /api/stock/movements.
type RegisterStockMovementRequest struct {
	DepotID  string          `json:"depot_id"`
	ItemSKU  string          `json:"item_sku"`
	Type     string          `json:"type"` // IN | OUT | ADJUSTMENT
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason,omitempty"`
}

// StockMovementResponse movimento de estoque na resposta da API.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	DepotID       string          `json:"depot_id"`
	ItemSKU       string          `json:"item_sku"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reason        string          `json:"reason,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// MovementHistoryRequest filtros para GET /api/stock/movements. Exatamente
// um de DepotID/ItemSKU deve ser informado.
type MovementHistoryRequest struct {
	DepotID string
	ItemSKU string
	From    *time.Time
	To      *time.Time
	Page    PageRequest
}

// StockLevelResponse saldo de um item em um depósito.
type StockLevelResponse struct {
	DepotID   string          `json:"depot_id"`
	ItemSKU   string          `json:"item_sku"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ZeroDepotResponse resultado de POST /api/stock/depots/:id/zero.
type ZeroDepotResponse struct {
	TransactionID string `json:"transaction_id"`
	ItemsZeroed   int    `json:"items_zeroed"`
}

// CreateDepotRequest body para POST /api/stock/depots.
type CreateDepotRequest struct {
	Name string `json:"name"`
}

// UpdateDepotRequest body para PUT /api/stock/depots/:id.
type UpdateDepotRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// DepotResponse depósito na resposta da API.
type DepotResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
