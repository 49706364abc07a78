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

// TestGenerateInstallments_SomaExata para qualquer total e qualquer número
// de parcelas a soma fecha exatamente com Round2(total) — nenhum centavo
// some nem sobra.
func TestGenerateInstallments_SomaExata(t *testing.T) {
	totals := []string{"0.01", "10.00", "99.99", "1000.33"}
	issue := date(2024, time.January, 10)
	firstDue := date(2024, time.February, 10)

	for _, raw := range totals {
		total := decimal.RequireFromString(raw)
		for count := 1; count <= 12; count++ {
			installments, err := finance.GenerateInstallments(total, issue, firstDue, count, "cc-1", "cl-1")
			require.NoError(t, err, "total=%s count=%d", raw, count)
			require.Len(t, installments, count)

			sum := finance.SumInstallments(installments)
			assert.True(t, finance.Round2(total).Equal(sum),
				"total=%s count=%d: soma das parcelas = %s", raw, count, sum)
		}
	}
}

// TestGenerateInstallments_RestoNasPrimeiras o centavo extra vai nas
// primeiras parcelas, de forma determinística.
func TestGenerateInstallments_RestoNasPrimeiras(t *testing.T) {
	installments, err := finance.GenerateInstallments(
		decimal.RequireFromString("100.00"), date(2024, time.January, 5), date(2024, time.January, 31), 3, "", "")
	require.NoError(t, err)
	require.Len(t, installments, 3)

	assert.Equal(t, "33.34", installments[0].Value.StringFixed(2), "a primeira parcela leva o resto")
	assert.Equal(t, "33.33", installments[1].Value.StringFixed(2))
	assert.Equal(t, "33.33", installments[2].Value.StringFixed(2))
}

// TestGenerateInstallments_Cronograma cenário de ponta a ponta do spec de
// produto: 250,00 em 4x a partir de 31/01/2024, com os vencimentos fixando
// no último dia dos meses curtos.
func TestGenerateInstallments_Cronograma(t *testing.T) {
	installments, err := finance.GenerateInstallments(
		decimal.RequireFromString("250.00"),
		date(2024, time.January, 31), date(2024, time.January, 31), 4, "cc-1", "cl-1")
	require.NoError(t, err)
	require.Len(t, installments, 4)

	wantDues := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}
	for i, in := range installments {
		assert.Equal(t, i+1, in.Number, "numeração contígua começando em 1")
		assert.Equal(t, "62.50", in.Value.StringFixed(2))
		assert.True(t, wantDues[i].Equal(in.DueDate), "parcela %d: vencimento %s", i+1, in.DueDate)
		assert.True(t, date(2024, time.January, 31).Equal(in.IssueDate), "emissão constante no cronograma")
		assert.Equal(t, entity.StatusPending, in.Status, "toda parcela nasce pending")
	}
}

// TestGenerateInstallments_ParcelaUnica count = 1 devolve uma única parcela
// com o total arredondado.
func TestGenerateInstallments_ParcelaUnica(t *testing.T) {
	installments, err := finance.GenerateInstallments(
		decimal.RequireFromString("99.999"), date(2024, time.March, 1), date(2024, time.April, 1), 1, "", "")
	require.NoError(t, err)
	require.Len(t, installments, 1)
	assert.Equal(t, "100.00", installments[0].Value.StringFixed(2))
}

// TestGenerateInstallments_ContratoDoCaller entradas inválidas são erro
// explícito: um cronograma quebrado é pior que nenhum.
func TestGenerateInstallments_ContratoDoCaller(t *testing.T) {
	total := decimal.RequireFromString("100.00")
	issue := date(2024, time.January, 1)
	due := date(2024, time.February, 1)

	_, err := finance.GenerateInstallments(total, issue, due, 0, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "count zero")

	_, err = finance.GenerateInstallments(total, time.Time{}, due, 2, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "emissão zerada")

	_, err = finance.GenerateInstallments(total, issue, time.Time{}, 2, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "vencimento zerado")

	_, err = finance.GenerateInstallments(decimal.Zero, issue, due, 2, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "total zerado")
}
