package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/application/stock"
	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// ── stubs em memória ──────────────────────────────────────────────────────────

type stubDepotRepo struct {
	store map[string]*entity.Depot
}

func (r *stubDepotRepo) Create(d *entity.Depot) error { r.store[d.ID] = d; return nil }
func (r *stubDepotRepo) GetByID(id string) (*entity.Depot, error) {
	return r.store[id], nil
}
func (r *stubDepotRepo) ListByCompany(companyID string) ([]*entity.Depot, error) {
	var out []*entity.Depot
	for _, d := range r.store {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *stubDepotRepo) Update(d *entity.Depot) error { r.store[d.ID] = d; return nil }
func (r *stubDepotRepo) Delete(id string) error       { delete(r.store, id); return nil }

type levelKey struct{ depotID, sku string }

type stubLevelRepo struct {
	store map[levelKey]*entity.StockLevel
}

func newStubLevelRepo() *stubLevelRepo {
	return &stubLevelRepo{store: map[levelKey]*entity.StockLevel{}}
}

func (r *stubLevelRepo) GetForUpdate(depotID, sku string) (*entity.StockLevel, error) {
	l, ok := r.store[levelKey{depotID, sku}]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *stubLevelRepo) Upsert(l *entity.StockLevel) error {
	cp := *l
	r.store[levelKey{l.DepotID, l.ItemSKU}] = &cp
	return nil
}

func (r *stubLevelRepo) ListByDepot(depotID string, _, _ int) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for k, l := range r.store {
		if k.depotID == depotID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type stubMovementRepo struct {
	created []*entity.StockMovement
}

func (r *stubMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.created = append(r.created, &cp)
	return nil
}

func (r *stubMovementRepo) ListByDepot(depotID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.created {
		if m.DepotID == depotID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMovementRepo) ListByItem(sku string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.created {
		if m.ItemSKU == sku {
			out = append(out, m)
		}
	}
	return out, nil
}

// stubTxRunner executa a função diretamente sobre os stubs, sem transação real.
type stubTxRunner struct {
	movementRepo *stubMovementRepo
	levelRepo    *stubLevelRepo
}

func (t *stubTxRunner) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.StockLevelRepository) error) error {
	return fn(t.movementRepo, t.levelRepo)
}

func buildMovementUseCase() (*stock.MovementUseCase, *stubMovementRepo, *stubLevelRepo) {
	depotRepo := &stubDepotRepo{store: map[string]*entity.Depot{
		"dep-1": {ID: "dep-1", CompanyID: "emp-1", Name: "Depósito Central", Active: true},
	}}
	levelRepo := newStubLevelRepo()
	movementRepo := &stubMovementRepo{}
	runner := &stubTxRunner{movementRepo: movementRepo, levelRepo: levelRepo}
	uc := stock.NewMovementUseCase(runner, depotRepo, levelRepo, movementRepo)
	return uc, movementRepo, levelRepo
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_EntradaCriaSaldo(t *testing.T) {
	uc, movements, levels := buildMovementUseCase()

	out, err := uc.Register(context.Background(), "emp-1", "user-1", dto.RegisterStockMovementRequest{
		DepotID: "dep-1", ItemSKU: "RACAO-10KG", Type: entity.StockMovementIN, Quantity: qty("5"),
	})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(qty("5")), "IN deve registrar delta positivo")
	require.Len(t, movements.created, 1)

	level, err := levels.GetForUpdate("dep-1", "RACAO-10KG")
	require.NoError(t, err)
	require.NotNil(t, level, "o saldo deve ser criado na primeira entrada")
	assert.True(t, level.Quantity.Equal(qty("5")))
}

func TestRegister_SaidaNuncaDeixaSaldoNegativo(t *testing.T) {
	uc, movements, levels := buildMovementUseCase()
	require.NoError(t, levels.Upsert(&entity.StockLevel{DepotID: "dep-1", ItemSKU: "SERINGA", Quantity: qty("3")}))

	_, err := uc.Register(context.Background(), "emp-1", "user-1", dto.RegisterStockMovementRequest{
		DepotID: "dep-1", ItemSKU: "SERINGA", Type: entity.StockMovementOUT, Quantity: qty("4"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "OUT maior que o saldo deve falhar")
	assert.Empty(t, movements.created, "nenhum movimento deve ser gravado quando a saída falha")

	level, _ := levels.GetForUpdate("dep-1", "SERINGA")
	assert.True(t, level.Quantity.Equal(qty("3")), "o saldo não pode mudar")
}

func TestRegister_AjusteNegativoSubtrai(t *testing.T) {
	uc, _, levels := buildMovementUseCase()
	require.NoError(t, levels.Upsert(&entity.StockLevel{DepotID: "dep-1", ItemSKU: "GAZE", Quantity: qty("10")}))

	out, err := uc.Register(context.Background(), "emp-1", "user-1", dto.RegisterStockMovementRequest{
		DepotID: "dep-1", ItemSKU: "GAZE", Type: entity.StockMovementADJUSTMENT, Quantity: qty("-2.5"),
	})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(qty("-2.5")))

	level, _ := levels.GetForUpdate("dep-1", "GAZE")
	assert.True(t, level.Quantity.Equal(qty("7.5")))
}

func TestRegister_ValidacaoDeEntrada(t *testing.T) {
	uc, _, _ := buildMovementUseCase()

	cases := []struct {
		name string
		in   dto.RegisterStockMovementRequest
	}{
		{"tipo desconhecido", dto.RegisterStockMovementRequest{DepotID: "dep-1", ItemSKU: "X", Type: "TRANSFER", Quantity: qty("1")}},
		{"IN com quantidade zero", dto.RegisterStockMovementRequest{DepotID: "dep-1", ItemSKU: "X", Type: entity.StockMovementIN, Quantity: qty("0")}},
		{"OUT com quantidade negativa", dto.RegisterStockMovementRequest{DepotID: "dep-1", ItemSKU: "X", Type: entity.StockMovementOUT, Quantity: qty("-1")}},
		{"ADJUSTMENT zero", dto.RegisterStockMovementRequest{DepotID: "dep-1", ItemSKU: "X", Type: entity.StockMovementADJUSTMENT, Quantity: qty("0")}},
		{"sem SKU", dto.RegisterStockMovementRequest{DepotID: "dep-1", Type: entity.StockMovementIN, Quantity: qty("1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), "emp-1", "user-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_DepositoDeOutraEmpresa(t *testing.T) {
	uc, _, _ := buildMovementUseCase()

	_, err := uc.Register(context.Background(), "emp-2", "user-1", dto.RegisterStockMovementRequest{
		DepotID: "dep-1", ItemSKU: "X", Type: entity.StockMovementIN, Quantity: qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "depósito de outra empresa não pode ser visto")
}

// ── ZeroDepot ─────────────────────────────────────────────────────────────────

func TestZeroDepot_ZeraTodosOsSaldosComMesmaTransacao(t *testing.T) {
	uc, movements, levels := buildMovementUseCase()
	require.NoError(t, levels.Upsert(&entity.StockLevel{DepotID: "dep-1", ItemSKU: "A", Quantity: qty("4")}))
	require.NoError(t, levels.Upsert(&entity.StockLevel{DepotID: "dep-1", ItemSKU: "B", Quantity: qty("1.5")}))
	require.NoError(t, levels.Upsert(&entity.StockLevel{DepotID: "dep-1", ItemSKU: "C", Quantity: qty("0")}))

	out, err := uc.ZeroDepot(context.Background(), "emp-1", "user-1", "dep-1", "inventário anual")
	require.NoError(t, err)
	assert.Equal(t, 2, out.ItemsZeroed, "itens já zerados não contam")
	require.Len(t, movements.created, 2)

	for _, m := range movements.created {
		assert.Equal(t, out.TransactionID, m.TransactionID, "todos os ajustes compartilham a transação")
		assert.Equal(t, entity.StockMovementADJUSTMENT, m.Type)
		assert.True(t, m.Quantity.IsNegative(), "a zeragem grava ajustes negativos")
		assert.Equal(t, "inventário anual", m.Reason)
	}

	remaining, _ := levels.ListByDepot("dep-1", 100, 0)
	for _, l := range remaining {
		assert.True(t, l.Quantity.IsZero(), "todo saldo deve terminar em zero")
	}
}

func TestZeroDepot_DepositoInexistente(t *testing.T) {
	uc, _, _ := buildMovementUseCase()

	_, err := uc.ZeroDepot(context.Background(), "emp-1", "user-1", "dep-404", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── History ───────────────────────────────────────────────────────────────────

func TestHistory_FiltraPorDepositoEPorItem(t *testing.T) {
	uc, _, _ := buildMovementUseCase()

	for _, sku := range []string{"A", "A", "B"} {
		_, err := uc.Register(context.Background(), "emp-1", "user-1", dto.RegisterStockMovementRequest{
			DepotID: "dep-1", ItemSKU: sku, Type: entity.StockMovementIN, Quantity: qty("1"),
		})
		require.NoError(t, err)
	}

	byDepot, err := uc.History("emp-1", dto.MovementHistoryRequest{DepotID: "dep-1"})
	require.NoError(t, err)
	assert.Len(t, byDepot, 3)

	byItem, err := uc.History("emp-1", dto.MovementHistoryRequest{ItemSKU: "A"})
	require.NoError(t, err)
	assert.Len(t, byItem, 2)

	_, err = uc.History("emp-1", dto.MovementHistoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "é preciso informar depósito ou item")
}
