package finance

import (
	"time"

	"github.com/raizvet/backoffice-api/internal/domain"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// GenerateInstallments divide o valor total do título em count parcelas
// mensais sem deriva de arredondamento:
//
//  1. converte o total para centavos inteiros;
//  2. base = floor(totalCents / count); o resto é distribuído um centavo por
//     parcela, começando pelas primeiras (determinístico, nada sobra no fim);
//  3. vencimento da parcela i = AddMonths(firstDueDate, i);
//  4. a emissão de todas as parcelas é a emissão do título;
//  5. toda parcela nasce pending.
//
// Garantia: a soma das parcelas é exatamente Round2(total), para qualquer
// total e qualquer count >= 1. Fail-closed: count inválido, datas zeradas ou
// total não positivo são erro do contrato do caller — um cronograma quebrado
// é pior que nenhum.
func GenerateInstallments(
	total decimal.Decimal,
	issueDate, firstDueDate time.Time,
	count int,
	bankAccountID, ledgerAccountID string,
) ([]entity.Installment, error) {
	if count < 1 {
		return nil, domain.ErrInvalidInput
	}
	if issueDate.IsZero() || firstDueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	totalCents := Cents(Round2(total))
	if totalCents <= 0 {
		return nil, domain.ErrInvalidInput
	}

	base := totalCents / int64(count)
	remainder := totalCents - base*int64(count)

	installments := make([]entity.Installment, 0, count)
	for i := 0; i < count; i++ {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		installments = append(installments, entity.Installment{
			Number:          i + 1,
			IssueDate:       issueDate,
			DueDate:         AddMonths(firstDueDate, i),
			Value:           FromCents(cents),
			BankAccountID:   bankAccountID,
			LedgerAccountID: ledgerAccountID,
			Status:          entity.StatusPending,
		})
	}
	return installments, nil
}

// SumInstallments soma os valores das parcelas com 2 casas. Usado para
// validar que um cronograma editado manualmente continua fechando com o
// total do título.
func SumInstallments(installments []entity.Installment) decimal.Decimal {
	sum := decimal.Zero
	for _, in := range installments {
		sum = sum.Add(in.Value)
	}
	return Round2(sum)
}
