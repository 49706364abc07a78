package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso CRUD de formas de pagamento.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase constrói o caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create cadastra uma forma de pagamento; o tipo vem do conjunto fechado
// avista|debito|credito|crediario.
func (uc *PaymentMethodUseCase) Create(companyID string, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Name == "" || !entity.ValidPaymentType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	method := &entity.PaymentMethod{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Code:            in.Code,
		Name:            in.Name,
		Type:            in.Type,
		Days:            in.Days,
		Discount:        finance.ParseAmount(in.Discount),
		Installments:    in.Installments,
		BankAccountID:   in.BankAccountID,
		LedgerAccountID: in.LedgerAccountID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// GetByID busca uma forma de pagamento, escopada pela empresa.
func (uc *PaymentMethodUseCase) GetByID(companyID, id string) (*dto.PaymentMethodResponse, error) {
	method, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// List lista as formas de pagamento da empresa.
func (uc *PaymentMethodUseCase) List(companyID string) ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toPaymentMethodResponse(m))
	}
	return items, nil
}

// Update altera os campos enviados.
func (uc *PaymentMethodUseCase) Update(companyID, id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.loadScoped(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Code != nil {
		method.Code = *in.Code
	}
	if in.Name != nil {
		method.Name = *in.Name
	}
	if in.Type != nil {
		if !entity.ValidPaymentType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		method.Type = *in.Type
	}
	if in.Days != nil {
		method.Days = *in.Days
	}
	if in.Discount != nil {
		method.Discount = finance.ParseAmount(*in.Discount)
	}
	if in.Installments != nil {
		method.Installments = *in.Installments
	}
	if in.BankAccountID != nil {
		method.BankAccountID = *in.BankAccountID
	}
	if in.LedgerAccountID != nil {
		method.LedgerAccountID = *in.LedgerAccountID
	}
	method.UpdatedAt = time.Now()
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// Delete remove uma forma de pagamento.
func (uc *PaymentMethodUseCase) Delete(companyID, id string) error {
	if _, err := uc.loadScoped(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *PaymentMethodUseCase) loadScoped(companyID, id string) (*entity.PaymentMethod, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}
	if method.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return method, nil
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	if m == nil {
		return nil
	}
	return &dto.PaymentMethodResponse{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		Code:            m.Code,
		Name:            m.Name,
		Type:            m.Type,
		Days:            m.Days,
		Discount:        m.Discount,
		Installments:    m.Installments,
		BankAccountID:   m.BankAccountID,
		LedgerAccountID: m.LedgerAccountID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
