package repository

import (
	"context"
	"time"

	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

// PayableFilter filtros da listagem de títulos. Campos zerados não filtram.
type PayableFilter struct {
	SupplierID string
	Status     entity.Status
	DueFrom    *time.Time
	DueTo      *time.Time
	Search     string
}

// PayableRepository define a porta de persistência de títulos a pagar e suas
// parcelas. Título e parcelas são salvos e lidos como um agregado único.
type PayableRepository interface {
	Create(payable *entity.PayableTitle) error
	GetByID(id string) (*entity.PayableTitle, error)
	GetByCode(companyID, code string) (*entity.PayableTitle, error)
	ListByCompany(companyID string, filter PayableFilter, limit, offset int) ([]*entity.PayableTitle, error)
	// Update regrava o título e substitui o conjunto de parcelas pelo novo.
	Update(payable *entity.PayableTitle) error
	Delete(id string) error

	// NextSequentialCode devolve o próximo código CP-YYYY-NNNNN da empresa,
	// atômico sob concorrência.
	NextSequentialCode(companyID string, year int) (string, error)

	// ListAgendaItems projeta as parcelas da empresa como itens de agenda,
	// já com nome e documento do fornecedor desnormalizados.
	ListAgendaItems(ctx context.Context, companyID string, dueFrom, dueTo *time.Time) ([]finance.AgendaItem, error)

	// SummarizeAgenda agregação autoritativa dos buckets direto no banco.
	SummarizeAgenda(ctx context.Context, companyID string, periodStart, periodEnd, now time.Time) (finance.AgendaSummary, error)
}
