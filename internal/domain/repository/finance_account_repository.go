package repository

import "github.com/raizvet/backoffice-api/internal/domain/entity"

// BankAccountRepository define a porta de persistência de contas correntes.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	ListByCompany(companyID string, onlyActive bool) ([]*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
	Delete(id string) error
}

// LedgerAccountRepository define a porta de persistência do plano de contas.
type LedgerAccountRepository interface {
	Create(account *entity.LedgerAccount) error
	GetByID(id string) (*entity.LedgerAccount, error)
	// ListByCompany filtra por natureza (pagar/receber) quando nature não é vazio.
	ListByCompany(companyID, nature string, onlyActive bool) ([]*entity.LedgerAccount, error)
	Update(account *entity.LedgerAccount) error
	Delete(id string) error
}
