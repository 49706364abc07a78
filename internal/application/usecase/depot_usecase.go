package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// DepotUseCase casos de uso CRUD de depósitos de estoque.
type DepotUseCase struct {
	repo repository.DepotRepository
}

// NewDepotUseCase constrói o caso de uso.
func NewDepotUseCase(repo repository.DepotRepository) *DepotUseCase {
	return &DepotUseCase{repo: repo}
}

// Create cadastra um depósito ativo.
func (uc *DepotUseCase) Create(companyID string, in dto.CreateDepotRequest) (*dto.DepotResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	depot := &entity.Depot{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(depot); err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// GetByID busca um depósito, escopado pela empresa.
func (uc *DepotUseCase) GetByID(companyID, id string) (*dto.DepotResponse, error) {
	depot, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// List lista os depósitos da empresa.
func (uc *DepotUseCase) List(companyID string) ([]dto.DepotResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepotResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepotResponse(d))
	}
	return items, nil
}

// Update altera os campos enviados.
func (uc *DepotUseCase) Update(companyID, id string, in dto.UpdateDepotRequest) (*dto.DepotResponse, error) {
	depot, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		depot.Name = *in.Name
	}
	if in.Active != nil {
		depot.Active = *in.Active
	}
	depot.UpdatedAt = time.Now()
	if err := uc.repo.Update(depot); err != nil {
		return nil, err
	}
	return toDepotResponse(depot), nil
}

// Delete remove um depósito.
func (uc *DepotUseCase) Delete(companyID, id string) error {
	if _, err := uc.loadScoped(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *DepotUseCase) loadScoped(companyID, id string) (*entity.Depot, error) {
	depot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}
	if depot.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return depot, nil
}

func toDepotResponse(d *entity.Depot) *dto.DepotResponse {
	if d == nil {
		return nil
	}
	return &dto.DepotResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		Name:      d.Name,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
