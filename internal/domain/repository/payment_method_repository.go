package repository

import "github.com/raizvet/backoffice-api/internal/domain/entity"

// PaymentMethodRepository define a porta de persistência de formas de pagamento.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	ListByCompany(companyID string) ([]*entity.PaymentMethod, error)
	Update(method *entity.PaymentMethod) error
	Delete(id string) error
}
