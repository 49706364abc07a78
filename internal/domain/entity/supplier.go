package entity

import "time"

// Supplier cadastro de fornecedor da empresa.
type Supplier struct {
	ID        string
	CompanyID string
	LegalName string // razão social
	TradeName string // nome fantasia
	CNPJ      string
	Email     string
	Phone     string
	Mobile    string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName devolve o melhor nome disponível para exibição.
func (s *Supplier) DisplayName() string {
	if s == nil {
		return ""
	}
	if s.TradeName != "" {
		return s.TradeName
	}
	if s.LegalName != "" {
		return s.LegalName
	}
	if s.Email != "" {
		return s.Email
	}
	return "Sem identificação"
}
