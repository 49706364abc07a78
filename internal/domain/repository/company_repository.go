package repository

import "github.com/raizvet/backoffice-api/internal/domain/entity"

// CompanyRepository define a porta de persistência de empresas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByDocument(document string) (*entity.Company, error)
	Update(company *entity.Company) error
}
