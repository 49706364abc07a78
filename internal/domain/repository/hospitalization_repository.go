package repository

import "github.com/raizvet/backoffice-api/internal/domain/entity"

// HospitalizationRepository define a porta de persistência das internações.
type HospitalizationRepository interface {
	Create(stay *entity.HospitalizationStay) error
	GetByID(id string) (*entity.HospitalizationStay, error)
	// ListActive devolve as internações não finalizadas da empresa, mais
	// antigas primeiro.
	ListActive(companyID string) ([]*entity.HospitalizationStay, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.HospitalizationStay, error)
	Update(stay *entity.HospitalizationStay) error
	Delete(id string) error
}
