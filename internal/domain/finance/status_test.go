package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

// TestCanonicalStatus_Tokens variações acentuadas, localizadas e com
// pontuação reduzem para o valor canônico; o que não se reconhece vira
// pending.
func TestCanonicalStatus_Tokens(t *testing.T) {
	cases := []struct {
		in   string
		want entity.Status
	}{
		{"paid", entity.StatusPaid},
		{"Pago", entity.StatusPaid},
		{"PAGA", entity.StatusPaid},
		{"quitado", entity.StatusPaid},
		{"Liquidada", entity.StatusPaid},
		{"CONCLUÍDO", entity.StatusPaid},
		{"recebido", entity.StatusPaid},

		{"protest", entity.StatusProtest},
		{"PROTESTADO", entity.StatusProtest},
		{"em protesto", entity.StatusProtest},
		{"em_protesto", entity.StatusProtest},

		{"cancelled", entity.StatusCancelled},
		{"canceled", entity.StatusCancelled},
		{"Cancelado", entity.StatusCancelled},
		{"anulada", entity.StatusCancelled},

		// fail-open
		{"", entity.StatusPending},
		{"pendente", entity.StatusPending},
		{"???", entity.StatusPending},
		{"vencido", entity.StatusPending},
		{"  pago!!  ", entity.StatusPaid}, // pontuação e espaços não atrapalham
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, finance.CanonicalStatus(tc.in), "CanonicalStatus(%q)", tc.in)
	}
}

// TestCanonicalStatus_Idempotente canonicalizar duas vezes é o mesmo que uma.
func TestCanonicalStatus_Idempotente(t *testing.T) {
	for _, in := range []string{"Pago", "PROTESTADO", "cancelada", "???", "", "pending"} {
		once := finance.CanonicalStatus(in)
		twice := finance.CanonicalStatus(string(once))
		assert.Equal(t, once, twice, "idempotência quebrada para %q", in)
	}
}

// TestParseTargetStatus fail-closed: alvo de transição desconhecido é erro,
// nunca um pending silencioso.
func TestParseTargetStatus(t *testing.T) {
	got, err := finance.ParseTargetStatus("Pago")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got)

	got, err = finance.ParseTargetStatus("pendente")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got, "reabertura explícita é alvo válido")

	got, err = finance.ParseTargetStatus("em aberto")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got)

	for _, in := range []string{"", "???", "cancelar", "vencido"} {
		_, err := finance.ParseTargetStatus(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "ParseTargetStatus(%q) deveria falhar", in)
	}
}
