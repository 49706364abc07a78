package payables

import (
	"context"
	"time"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// LifecycleUseCase transições de status de parcela, com publicação de evento
// e métricas após a persistência.
type LifecycleUseCase struct {
	payableRepo  repository.PayableRepository
	supplierRepo repository.SupplierRepository
	publisher    EventPublisher
	metrics      MetricsRecorder
}

// NewLifecycleUseCase constrói o caso de uso.
func NewLifecycleUseCase(
	payableRepo repository.PayableRepository,
	supplierRepo repository.SupplierRepository,
	publisher EventPublisher,
	metrics MetricsRecorder,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		payableRepo:  payableRepo,
		supplierRepo: supplierRepo,
		publisher:    publisher,
		metrics:      metrics,
	}
}

// TransitionInstallment aplica a transição pedida na parcela indicada.
// O status alvo aceita sinônimos localizados; marcar como paga exige a data
// de liquidação. Evento e métrica só saem depois do Update bem-sucedido.
func (uc *LifecycleUseCase) TransitionInstallment(
	ctx context.Context,
	companyID, userID, payableID string,
	number int,
	in dto.TransitionRequest,
) (*dto.PayableResponse, error) {
	payable, err := uc.payableRepo.GetByID(payableID)
	if err != nil {
		return nil, err
	}
	if payable == nil {
		return nil, domain.ErrNotFound
	}
	if payable.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	target, err := finance.ParseTargetStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var inst *entity.Installment
	for i := range payable.Installments {
		if payable.Installments[i].Number == number {
			inst = &payable.Installments[i]
			break
		}
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}
	from := finance.CanonicalStatus(string(inst.Status))

	var meta *entity.PaymentMetadata
	if target == entity.StatusPaid {
		settledAt, perr := parseDate(in.SettledAt)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		meta = &entity.PaymentMetadata{
			SettledAt:       settledAt,
			BankAccountID:   in.BankAccountID,
			PaymentMethodID: in.PaymentMethodID,
			Notes:           in.Notes,
		}
	}

	if err := finance.ApplyTransition(inst, target, meta); err != nil {
		return nil, err
	}

	payable.UpdatedAt = time.Now()
	if err := uc.payableRepo.Update(payable); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordTransition(from, target)
	}
	if uc.publisher != nil {
		uc.publisher.PublishStatusChanged(ctx, StatusChangedEvent{
			PayableID:         payable.ID,
			PayableCode:       payable.Code,
			CompanyID:         payable.CompanyID,
			InstallmentNumber: number,
			From:              from,
			To:                target,
			ChangedBy:         userID,
			OccurredAt:        time.Now().UTC(),
		})
	}

	supplierName := ""
	if supplier, serr := uc.supplierRepo.GetByID(payable.SupplierID); serr == nil && supplier != nil {
		supplierName = supplier.DisplayName()
	}
	return toPayableResponse(payable, supplierName), nil
}
