package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// FinanceAccountUseCase casos de uso CRUD de contas correntes e plano de contas.
type FinanceAccountUseCase struct {
	bankRepo   repository.BankAccountRepository
	ledgerRepo repository.LedgerAccountRepository
}

// NewFinanceAccountUseCase constrói o caso de uso.
func NewFinanceAccountUseCase(bankRepo repository.BankAccountRepository, ledgerRepo repository.LedgerAccountRepository) *FinanceAccountUseCase {
	return &FinanceAccountUseCase{bankRepo: bankRepo, ledgerRepo: ledgerRepo}
}

// ── contas correntes ─────────────────────────────────────────────────────────

// CreateBankAccount cadastra uma conta corrente.
func (uc *FinanceAccountUseCase) CreateBankAccount(companyID string, in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.Alias == "" && in.BankName == "" && in.AccountNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.BankAccount{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Alias:         in.Alias,
		BankName:      in.BankName,
		BankCode:      in.BankCode,
		Agency:        in.Agency,
		AccountNumber: in.AccountNumber,
		AccountDigit:  in.AccountDigit,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.bankRepo.Create(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// ListBankAccounts lista as contas correntes da empresa.
func (uc *FinanceAccountUseCase) ListBankAccounts(companyID string, onlyActive bool) ([]dto.BankAccountResponse, error) {
	list, err := uc.bankRepo.ListByCompany(companyID, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankAccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toBankAccountResponse(a))
	}
	return items, nil
}

// UpdateBankAccount altera os campos enviados.
func (uc *FinanceAccountUseCase) UpdateBankAccount(companyID, id string, in dto.UpdateBankAccountRequest) (*dto.BankAccountResponse, error) {
	account, err := uc.bankRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Alias != nil {
		account.Alias = *in.Alias
	}
	if in.BankName != nil {
		account.BankName = *in.BankName
	}
	if in.BankCode != nil {
		account.BankCode = *in.BankCode
	}
	if in.Agency != nil {
		account.Agency = *in.Agency
	}
	if in.AccountNumber != nil {
		account.AccountNumber = *in.AccountNumber
	}
	if in.AccountDigit != nil {
		account.AccountDigit = *in.AccountDigit
	}
	if in.Active != nil {
		account.Active = *in.Active
	}
	account.UpdatedAt = time.Now()
	if err := uc.bankRepo.Update(account); err != nil {
		return nil, err
	}
	return toBankAccountResponse(account), nil
}

// DeleteBankAccount remove uma conta corrente.
func (uc *FinanceAccountUseCase) DeleteBankAccount(companyID, id string) error {
	account, err := uc.bankRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if account.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.bankRepo.Delete(id)
}

// ── plano de contas ──────────────────────────────────────────────────────────

// CreateLedgerAccount cadastra uma conta contábil com natureza de pagamento.
func (uc *FinanceAccountUseCase) CreateLedgerAccount(companyID string, in dto.CreateLedgerAccountRequest) (*dto.LedgerAccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentNature != entity.PaymentNaturePayable && in.PaymentNature != entity.PaymentNatureReceivable {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.LedgerAccount{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Code:          in.Code,
		Name:          in.Name,
		PaymentNature: in.PaymentNature,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.ledgerRepo.Create(account); err != nil {
		return nil, err
	}
	return toLedgerAccountResponse(account), nil
}

// ListLedgerAccounts lista as contas contábeis, com filtro opcional por natureza.
func (uc *FinanceAccountUseCase) ListLedgerAccounts(companyID, nature string, onlyActive bool) ([]dto.LedgerAccountResponse, error) {
	list, err := uc.ledgerRepo.ListByCompany(companyID, nature, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerAccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toLedgerAccountResponse(a))
	}
	return items, nil
}

// UpdateLedgerAccount altera os campos enviados.
func (uc *FinanceAccountUseCase) UpdateLedgerAccount(companyID, id string, in dto.UpdateLedgerAccountRequest) (*dto.LedgerAccountResponse, error) {
	account, err := uc.ledgerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Code != nil {
		account.Code = *in.Code
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.PaymentNature != nil {
		if *in.PaymentNature != entity.PaymentNaturePayable && *in.PaymentNature != entity.PaymentNatureReceivable {
			return nil, domain.ErrInvalidInput
		}
		account.PaymentNature = *in.PaymentNature
	}
	if in.Active != nil {
		account.Active = *in.Active
	}
	account.UpdatedAt = time.Now()
	if err := uc.ledgerRepo.Update(account); err != nil {
		return nil, err
	}
	return toLedgerAccountResponse(account), nil
}

// DeleteLedgerAccount remove uma conta contábil.
func (uc *FinanceAccountUseCase) DeleteLedgerAccount(companyID, id string) error {
	account, err := uc.ledgerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if account.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.ledgerRepo.Delete(id)
}

func toBankAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	if a == nil {
		return nil
	}
	return &dto.BankAccountResponse{
		ID:            a.ID,
		CompanyID:     a.CompanyID,
		Alias:         a.Alias,
		BankName:      a.BankName,
		BankCode:      a.BankCode,
		Agency:        a.Agency,
		AccountNumber: a.AccountNumber,
		AccountDigit:  a.AccountDigit,
		Label:         a.Label(),
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toLedgerAccountResponse(a *entity.LedgerAccount) *dto.LedgerAccountResponse {
	if a == nil {
		return nil
	}
	return &dto.LedgerAccountResponse{
		ID:            a.ID,
		CompanyID:     a.CompanyID,
		Code:          a.Code,
		Name:          a.Name,
		PaymentNature: a.PaymentNature,
		Label:         a.Label(),
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
