package stock

import (
	"context"

	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante atomicidade entre o saldo e
// o registro do movimento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movementRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
	) error) error
}
