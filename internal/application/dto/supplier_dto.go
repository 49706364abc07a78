package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name,omitempty"`
	CNPJ      string `json:"cnpj,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id. Campos nil não mudam.
type UpdateSupplierRequest struct {
	LegalName *string `json:"legal_name,omitempty"`
	TradeName *string `json:"trade_name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Mobile    *string `json:"mobile,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// SupplierResponse fornecedor na resposta da API.
type SupplierResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	LegalName   string    `json:"legal_name"`
	TradeName   string    `json:"trade_name,omitempty"`
	DisplayName string    `json:"display_name"`
	CNPJ        string    `json:"cnpj,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Mobile      string    `json:"mobile,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse página de fornecedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
