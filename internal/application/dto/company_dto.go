package dto

import "time"

// CreateCompanyRequest body para POST /api/companies (bootstrap de conta).
type CreateCompanyRequest struct {
	Name      string `json:"name"`
	TradeName string `json:"trade_name,omitempty"`
	CNPJ      string `json:"cnpj,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`

	// Usuário administrador inicial da empresa.
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	AdminName     string `json:"admin_name"`
}

// UpdateCompanyRequest body para PUT /api/auth/companies/me. Campos nulos
// mantêm o valor atual.
type UpdateCompanyRequest struct {
	Name      *string `json:"name,omitempty"`
	TradeName *string `json:"trade_name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// CompanyResponse empresa na resposta da API.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TradeName string    `json:"trade_name,omitempty"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
