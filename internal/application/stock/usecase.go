package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// MovementUseCase registra movimentos de estoque de forma transacional
// (IN, OUT, ADJUSTMENT) com bloqueio de linha no saldo.
type MovementUseCase struct {
	txRunner     TxRunner
	depotRepo    repository.DepotRepository
	levelRepo    repository.StockLevelRepository
	movementRepo repository.StockMovementRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	depotRepo repository.DepotRepository,
	levelRepo repository.StockLevelRepository,
	movementRepo repository.StockMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		depotRepo:    depotRepo,
		levelRepo:    levelRepo,
		movementRepo: movementRepo,
	}
}

// Register valida e grava um movimento, ajustando o saldo na mesma transação.
// OUT nunca deixa o saldo negativo; ADJUSTMENT positivo soma, negativo subtrai.
func (uc *MovementUseCase) Register(ctx context.Context, companyID, userID string, in dto.RegisterStockMovementRequest) (*dto.StockMovementResponse, error) {
	switch in.Type {
	case entity.StockMovementIN, entity.StockMovementOUT:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.StockMovementADJUSTMENT:
		if in.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.DepotID == "" || in.ItemSKU == "" {
		return nil, domain.ErrInvalidInput
	}

	depot, err := uc.depotRepo.GetByID(in.DepotID)
	if err != nil {
		return nil, err
	}
	if depot == nil || depot.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: uuid.New().String(),
		CompanyID:     companyID,
		DepotID:       in.DepotID,
		ItemSKU:       in.ItemSKU,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Reason:        in.Reason,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     userID,
	}

	err = uc.txRunner.Run(ctx, func(movementRepo repository.StockMovementRepository, levelRepo repository.StockLevelRepository) error {
		level, lerr := levelRepo.GetForUpdate(in.DepotID, in.ItemSKU)
		if lerr != nil {
			return lerr
		}
		if level == nil {
			level = &entity.StockLevel{DepotID: in.DepotID, ItemSKU: in.ItemSKU, Quantity: decimal.Zero}
		}

		delta := in.Quantity
		if in.Type == entity.StockMovementOUT {
			delta = in.Quantity.Neg()
		}
		newQty := level.Quantity.Add(delta)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}

		level.Quantity = newQty
		level.UpdatedAt = now
		if uerr := levelRepo.Upsert(level); uerr != nil {
			return uerr
		}
		mov.Quantity = delta
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ZeroDepot zera todos os saldos do depósito em uma única transação, gravando
// um ADJUSTMENT negativo por item sob o mesmo TransactionID.
func (uc *MovementUseCase) ZeroDepot(ctx context.Context, companyID, userID, depotID, reason string) (*dto.ZeroDepotResponse, error) {
	depot, err := uc.depotRepo.GetByID(depotID)
	if err != nil {
		return nil, err
	}
	if depot == nil || depot.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if reason == "" {
		reason = "zeragem de depósito"
	}

	now := time.Now()
	txID := uuid.New().String()
	zeroed := 0

	err = uc.txRunner.Run(ctx, func(movementRepo repository.StockMovementRepository, levelRepo repository.StockLevelRepository) error {
		levels, lerr := levelRepo.ListByDepot(depotID, 10000, 0)
		if lerr != nil {
			return lerr
		}
		for _, level := range levels {
			if level.Quantity.IsZero() {
				continue
			}
			locked, gerr := levelRepo.GetForUpdate(depotID, level.ItemSKU)
			if gerr != nil {
				return gerr
			}
			if locked == nil || locked.Quantity.IsZero() {
				continue
			}
			mov := &entity.StockMovement{
				ID:            uuid.New().String(),
				TransactionID: txID,
				CompanyID:     companyID,
				DepotID:       depotID,
				ItemSKU:       locked.ItemSKU,
				Type:          entity.StockMovementADJUSTMENT,
				Quantity:      locked.Quantity.Neg(),
				Reason:        reason,
				Date:          now,
				CreatedAt:     now,
				CreatedBy:     userID,
			}
			if cerr := movementRepo.Create(mov); cerr != nil {
				return cerr
			}
			locked.Quantity = decimal.Zero
			locked.UpdatedAt = now
			if uerr := levelRepo.Upsert(locked); uerr != nil {
				return uerr
			}
			zeroed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ZeroDepotResponse{TransactionID: txID, ItemsZeroed: zeroed}, nil
}

// Levels lista os saldos do depósito.
func (uc *MovementUseCase) Levels(companyID, depotID string, page dto.PageRequest) ([]dto.StockLevelResponse, error) {
	depot, err := uc.depotRepo.GetByID(depotID)
	if err != nil {
		return nil, err
	}
	if depot == nil || depot.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	levels, err := uc.levelRepo.ListByDepot(depotID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.StockLevelResponse{
			DepotID: l.DepotID, ItemSKU: l.ItemSKU, Quantity: l.Quantity, UpdatedAt: l.UpdatedAt,
		})
	}
	return out, nil
}

// History lista os movimentos por depósito ou por item, mais recentes
// primeiro, com janela de datas opcional. Exatamente um dos filtros
// (depósito ou item) é obrigatório; o filtro por depósito é escopado pela
// empresa via o próprio depósito.
func (uc *MovementUseCase) History(companyID string, in dto.MovementHistoryRequest) ([]dto.StockMovementResponse, error) {
	in.Page.DefaultPage()

	var (
		movements []*entity.StockMovement
		err       error
	)
	switch {
	case in.DepotID != "":
		depot, derr := uc.depotRepo.GetByID(in.DepotID)
		if derr != nil {
			return nil, derr
		}
		if depot == nil || depot.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		movements, err = uc.movementRepo.ListByDepot(in.DepotID, in.From, in.To, in.Page.Limit, in.Page.Offset)
	case in.ItemSKU != "":
		movements, err = uc.movementRepo.ListByItem(in.ItemSKU, in.From, in.To, in.Page.Limit, in.Page.Offset)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		if m.CompanyID != companyID {
			continue
		}
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		DepotID:       m.DepotID,
		ItemSKU:       m.ItemSKU,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		Date:          m.Date,
		CreatedBy:     m.CreatedBy,
	}
}
