package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

func novaParcela(status entity.Status) *entity.Installment {
	return &entity.Installment{
		Number:  1,
		DueDate: date(2024, time.March, 10),
		Value:   decimal.RequireFromString("62.50"),
		Status:  status,
	}
}

func TestCanTransition_Arestas(t *testing.T) {
	// de pending sai para qualquer estado final
	assert.True(t, finance.CanTransition(entity.StatusPending, entity.StatusPaid))
	assert.True(t, finance.CanTransition(entity.StatusPending, entity.StatusProtest))
	assert.True(t, finance.CanTransition(entity.StatusPending, entity.StatusCancelled))

	// de estado final só se volta para pending
	assert.True(t, finance.CanTransition(entity.StatusPaid, entity.StatusPending))
	assert.True(t, finance.CanTransition(entity.StatusProtest, entity.StatusPending))
	assert.True(t, finance.CanTransition(entity.StatusCancelled, entity.StatusPending))

	// nenhuma aresta entre estados finais e nenhum laço
	assert.False(t, finance.CanTransition(entity.StatusPaid, entity.StatusProtest))
	assert.False(t, finance.CanTransition(entity.StatusPaid, entity.StatusCancelled))
	assert.False(t, finance.CanTransition(entity.StatusProtest, entity.StatusPaid))
	assert.False(t, finance.CanTransition(entity.StatusCancelled, entity.StatusPaid))
	assert.False(t, finance.CanTransition(entity.StatusPending, entity.StatusPending))
}

// TestApplyTransition_Pagamento pending → paid exige metadados com data de
// liquidação e os anexa à parcela.
func TestApplyTransition_Pagamento(t *testing.T) {
	inst := novaParcela(entity.StatusPending)
	meta := &entity.PaymentMetadata{
		SettledAt:       date(2024, time.March, 8),
		BankAccountID:   "cc-1",
		PaymentMethodID: "pm-pix",
		Notes:           "pago via PIX",
	}

	require.NoError(t, finance.ApplyTransition(inst, entity.StatusPaid, meta))
	assert.Equal(t, entity.StatusPaid, inst.Status)
	require.NotNil(t, inst.Payment)
	assert.True(t, meta.SettledAt.Equal(inst.Payment.SettledAt))
	assert.Equal(t, "cc-1", inst.Payment.BankAccountID)

	// a cópia protege a parcela de mutações posteriores no meta do caller
	meta.Notes = "alterado depois"
	assert.Equal(t, "pago via PIX", inst.Payment.Notes)
}

func TestApplyTransition_PagamentoSemMeta(t *testing.T) {
	inst := novaParcela(entity.StatusPending)

	err := finance.ApplyTransition(inst, entity.StatusPaid, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "paid sem meta")
	assert.Equal(t, entity.StatusPending, inst.Status, "parcela intocada após falha")

	err = finance.ApplyTransition(inst, entity.StatusPaid, &entity.PaymentMetadata{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "paid sem data de liquidação")
	assert.Equal(t, entity.StatusPending, inst.Status)
}

// TestApplyTransition_Reabertura voltar para pending limpa os metadados de
// pagamento, de qualquer estado final.
func TestApplyTransition_Reabertura(t *testing.T) {
	inst := novaParcela(entity.StatusPaid)
	inst.Payment = &entity.PaymentMetadata{SettledAt: date(2024, time.March, 8)}

	require.NoError(t, finance.ApplyTransition(inst, entity.StatusPending, nil))
	assert.Equal(t, entity.StatusPending, inst.Status)
	assert.Nil(t, inst.Payment, "reabertura descarta os dados de pagamento")

	for _, from := range []entity.Status{entity.StatusProtest, entity.StatusCancelled} {
		inst := novaParcela(from)
		require.NoError(t, finance.ApplyTransition(inst, entity.StatusPending, nil))
		assert.Equal(t, entity.StatusPending, inst.Status, "reabertura a partir de %s", from)
	}
}

func TestApplyTransition_ArestaIlegal(t *testing.T) {
	inst := novaParcela(entity.StatusPaid)
	inst.Payment = &entity.PaymentMetadata{SettledAt: date(2024, time.March, 8)}

	err := finance.ApplyTransition(inst, entity.StatusProtest, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "paid → protest não existe")
	assert.Equal(t, entity.StatusPaid, inst.Status)
	assert.NotNil(t, inst.Payment, "falha não pode ter efeito colateral")
}

// TestApplyTransition_StatusLegado parcela persistida com status fora do
// vocabulário canônico é tratada como pending antes de transicionar.
func TestApplyTransition_StatusLegado(t *testing.T) {
	inst := novaParcela(entity.Status("EM ABERTO?"))

	err := finance.ApplyTransition(inst, entity.StatusCancelled, nil)
	require.NoError(t, err, "status legado canonicaliza para pending, de onde a aresta existe")
	assert.Equal(t, entity.StatusCancelled, inst.Status)
}

// TestApplyTransition_AlvoForaDoVocabulario o alvo da transição nunca
// canonicaliza fail-open: token irreconhecível é erro e a parcela fica
// intocada — em especial, não degrada para pending reabrindo uma parcela
// paga e descartando seus metadados.
func TestApplyTransition_AlvoForaDoVocabulario(t *testing.T) {
	inst := novaParcela(entity.StatusPaid)
	inst.Payment = &entity.PaymentMetadata{SettledAt: date(2024, time.March, 8)}

	err := finance.ApplyTransition(inst, entity.Status("garbage???"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "alvo desconhecido é fail-closed")
	assert.Equal(t, entity.StatusPaid, inst.Status, "o status não pode mudar")
	require.NotNil(t, inst.Payment, "os metadados de pagamento não podem ser descartados")

	// alvo vazio cai na mesma regra
	err = finance.ApplyTransition(inst, entity.Status(""), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusPaid, inst.Status)
}

func TestApplyTransition_ParcelaNula(t *testing.T) {
	err := finance.ApplyTransition(nil, entity.StatusPaid, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
