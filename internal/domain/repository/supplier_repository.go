package repository

import "github.com/raizvet/backoffice-api/internal/domain/entity"

// SupplierRepository define a porta de persistência de fornecedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByCompanyAndDocument(companyID, document string) (*entity.Supplier, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
	// SearchByName busca por fragmento de nome/razão social, sem distinguir
	// maiúsculas nem acentos.
	SearchByName(companyID, query string, limit int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
