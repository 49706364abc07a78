package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD de fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create cadastra um fornecedor. CNPJ duplicado na empresa é ErrDuplicate.
func (uc *SupplierUseCase) Create(companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.LegalName == "" && in.TradeName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CNPJ != "" {
		existing, err := uc.repo.GetByCompanyAndDocument(companyID, in.CNPJ)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		LegalName: in.LegalName,
		TradeName: in.TradeName,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Phone:     in.Phone,
		Mobile:    in.Mobile,
		Notes:     in.Notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID busca um fornecedor, escopado pela empresa.
func (uc *SupplierUseCase) GetByID(companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista fornecedores da empresa com paginação.
func (uc *SupplierUseCase) List(companyID string, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Search busca por fragmento de nome para o autocomplete do formulário.
func (uc *SupplierUseCase) Search(companyID, query string, limit int) ([]dto.SupplierResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	list, err := uc.repo.SearchByName(companyID, query, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update altera os campos enviados.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.LegalName != nil {
		supplier.LegalName = *in.LegalName
	}
	if in.TradeName != nil {
		supplier.TradeName = *in.TradeName
	}
	if in.CNPJ != nil {
		supplier.CNPJ = *in.CNPJ
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Mobile != nil {
		supplier.Mobile = *in.Mobile
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete remove um fornecedor.
func (uc *SupplierUseCase) Delete(companyID, id string) error {
	if _, err := uc.loadScoped(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *SupplierUseCase) loadScoped(companyID, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		LegalName:   s.LegalName,
		TradeName:   s.TradeName,
		DisplayName: s.DisplayName(),
		CNPJ:        s.CNPJ,
		Email:       s.Email,
		Phone:       s.Phone,
		Mobile:      s.Mobile,
		Notes:       s.Notes,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
