package repository

import (
	"time"

	"github.com/raizvet/backoffice-api/internal/domain/entity"
)

// DepotRepository define a porta de persistência de depósitos.
type DepotRepository interface {
	Create(depot *entity.Depot) error
	GetByID(id string) (*entity.Depot, error)
	ListByCompany(companyID string) ([]*entity.Depot, error)
	Update(depot *entity.Depot) error
	Delete(id string) error
}

// StockLevelRepository define a porta de saldo por depósito+item.
// Usada dentro de transações para garantir consistência com movimentos.
type StockLevelRepository interface {
	Upsert(level *entity.StockLevel) error
	// GetForUpdate trava a linha do saldo (SELECT FOR UPDATE).
	GetForUpdate(depotID, itemID string) (*entity.StockLevel, error)
	ListByDepot(depotID string, limit, offset int) ([]*entity.StockLevel, error)
}

// StockMovementRepository define a porta de persistência de movimentos de estoque.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByDepot(depotID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
