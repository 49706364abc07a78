package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestAddMonths_FixaNoUltimoDia comportamento "bancário": 31/jan + 1 mês cai
// no último dia de fevereiro, nunca em março.
func TestAddMonths_FixaNoUltimoDia(t *testing.T) {
	cases := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)}, // bissexto
		{date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{date(2024, time.January, 31), 3, date(2024, time.April, 30)},
		{date(2024, time.March, 31), 11, date(2025, time.February, 28)}, // vira o ano
		{date(2024, time.May, 15), 1, date(2024, time.June, 15)},
		{date(2024, time.May, 15), 0, date(2024, time.May, 15)},
		{date(2024, time.March, 31), -1, date(2024, time.February, 29)}, // retrocesso também fixa
	}
	for _, tc := range cases {
		got := finance.AddMonths(tc.in, tc.n)
		assert.True(t, tc.want.Equal(got),
			"AddMonths(%s, %d) = %s, esperado %s", tc.in.Format("2006-01-02"), tc.n, got, tc.want)
	}
}

// TestAddMonths_NormalizaParaMeiaNoiteUTC o resultado é sempre uma data de
// calendário pura, sem hora nem fuso.
func TestAddMonths_NormalizaParaMeiaNoiteUTC(t *testing.T) {
	in := time.Date(2024, time.January, 31, 18, 45, 12, 0, time.FixedZone("BRT", -3*3600))
	got := finance.AddMonths(in, 1)

	assert.Equal(t, time.UTC, got.Location(), "resultado deve estar em UTC")
	assert.Equal(t, 0, got.Hour(), "resultado deve estar à meia-noite")
	// 31/jan 18:45 BRT = 31/jan 21:45 UTC → fev/2024 fixa no dia 29
	assert.True(t, date(2024, time.February, 29).Equal(got), "veio %s", got)
}
