// Package finance é o motor puro de contas a pagar: parsing monetário,
// aritmética de calendário, geração de parcelas, canonicalização de status,
// máquina de estados da parcela e agregação de agenda. Todas as funções são
// determinísticas e livres de efeitos; persistência e transporte ficam nas
// camadas externas.
package finance

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ParseAmount converte texto monetário heterogêneo em decimal: aceita vírgula
// ou ponto como separador decimal, agrupamento de milhar, símbolo de moeda e
// espaços ("R$ 1.234,56", "1,234.56", "1000"). Entrada sem conteúdo numérico
// devolve zero, nunca erro: o formulário já restringe o input, validar é
// responsabilidade do caller.
func ParseAmount(text string) decimal.Decimal {
	s := stripSpaces(text)
	if s == "" {
		return decimal.Zero
	}
	ci := strings.LastIndex(s, ",")
	di := strings.LastIndex(s, ".")
	switch {
	case ci >= 0 && di >= 0 && ci > di:
		// vírgula decimal, pontos de milhar: "1.234,56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case ci >= 0 && di >= 0:
		// ponto decimal, vírgulas de milhar: "1,234.56"
		s = strings.ReplaceAll(s, ",", "")
	case ci >= 0:
		// só vírgula: separador decimal (convenção pt-BR)
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = stripGroupingDots(s)
	}
	s = keepNumericRunes(s)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// Round2 arredonda para o centavo mais próximo (meio para longe de zero).
// Política única de arredondamento de todo o motor.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// Cents converte um valor já canônico para centavos inteiros.
func Cents(v decimal.Decimal) int64 {
	return v.Mul(oneHundred).Round(0).IntPart()
}

// FromCents converte centavos inteiros para decimal com 2 casas.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// FormatBRL formata o valor em texto monetário pt-BR ("R$ 1.234,56").
// Puramente apresentacional; para valores canônicos é o inverso exato de
// ParseAmount composto com Round2.
func FormatBRL(v decimal.Decimal) string {
	s := Round2(v).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "R$ -" + b.String() + "," + fracPart
	}
	return out
}

func stripSpaces(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripGroupingDots remove pontos que atuam como separador de milhar: um
// ponto seguido de exatamente três dígitos e então um não-dígito ou o fim da
// string ("1.234.567" → "1234567"; "10.50" mantém o ponto decimal).
func stripGroupingDots(s string) string {
	bytes := []byte(s)
	var b strings.Builder
	for i := 0; i < len(bytes); i++ {
		if bytes[i] != '.' {
			b.WriteByte(bytes[i])
			continue
		}
		if isGroupingDot(bytes, i) {
			continue
		}
		b.WriteByte('.')
	}
	return b.String()
}

// isGroupingDot: exatamente três dígitos após o ponto, seguidos de
// não-dígito ou fim ("1.234,56", "1.234.567"). Quatro ou mais dígitos
// indicam fração ("0.5000") e o ponto é preservado.
func isGroupingDot(s []byte, i int) bool {
	digits := 0
	for j := i + 1; j < len(s) && s[j] >= '0' && s[j] <= '9'; j++ {
		digits++
	}
	return digits == 3
}

func keepNumericRunes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
