package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

// TestParseAmount_Formatos cobre as variações de entrada que os formulários
// do back office realmente produzem: vírgula ou ponto decimal, milhar,
// símbolo de moeda e lixo.
func TestParseAmount_Formatos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"R$ 1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1000", "1000"},
		{"10.500", "10500"},   // ponto de milhar
		{"10.50", "10.5"},     // ponto decimal
		{"0.5000", "0.5"},     // quatro dígitos = fração
		{"1.234.567,89", "1234567.89"},
		{"-1.234,56", "-1234.56"},
		{"R$ -12,00", "-12"},
		{"  42  ", "42"},
	}
	for _, tc := range cases {
		got := finance.ParseAmount(tc.in)
		want, _ := decimal.NewFromString(tc.want)
		assert.True(t, want.Equal(got), "ParseAmount(%q) = %s, esperado %s", tc.in, got, want)
	}
}

// TestParseAmount_FailOpen entrada sem conteúdo numérico nunca gera erro:
// degrada para zero.
func TestParseAmount_FailOpen(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "???", "R$", "-", "+", ".", ","} {
		got := finance.ParseAmount(in)
		assert.True(t, got.IsZero(), "ParseAmount(%q) deve ser zero, veio %s", in, got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},  // meio para longe de zero
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"33.333333", "33.33"},
		{"99.99", "99.99"},
	}
	for _, tc := range cases {
		in, _ := decimal.NewFromString(tc.in)
		want, _ := decimal.NewFromString(tc.want)
		assert.True(t, want.Equal(finance.Round2(in)), "Round2(%s) deve ser %s", tc.in, tc.want)
	}
}

func TestCentsRoundTrip(t *testing.T) {
	v := decimal.RequireFromString("1234.56")
	assert.Equal(t, int64(123456), finance.Cents(v))
	assert.True(t, v.Equal(finance.FromCents(123456)), "FromCents(Cents(v)) deve devolver v")
}

// TestFormatBRL_InversoDoParse para valores canônicos, FormatBRL é o inverso
// exato de ParseAmount∘Round2.
func TestFormatBRL_InversoDoParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "R$ 1.234,56"},
		{"0", "R$ 0,00"},
		{"12.5", "R$ 12,50"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-42.07", "R$ -42,07"},
		{"100", "R$ 100,00"},
	}
	for _, tc := range cases {
		v := decimal.RequireFromString(tc.in)
		got := finance.FormatBRL(v)
		assert.Equal(t, tc.want, got, "FormatBRL(%s)", tc.in)

		back := finance.ParseAmount(got)
		assert.True(t, finance.Round2(v).Equal(back),
			"ParseAmount(FormatBRL(%s)) deve fechar o ciclo, veio %s", tc.in, back)
	}
}
