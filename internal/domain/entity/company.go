package entity

import "time"

// Company empresa (loja) dona dos cadastros; todo recurso é escopado por empresa.
type Company struct {
	ID        string
	Name      string
	TradeName string
	CNPJ      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName nome fantasia quando existir, senão razão social.
func (c *Company) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.TradeName != "" {
		return c.TradeName
	}
	if c.Name != "" {
		return c.Name
	}
	return "Empresa"
}
