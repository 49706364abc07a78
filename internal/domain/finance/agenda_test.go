package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

func item(status string, due time.Time, value string) finance.AgendaItem {
	return finance.AgendaItem{
		PayableID:         "p-1",
		PayableCode:       "CP-2024-00001",
		InstallmentNumber: 1,
		PartyName:         "Fornecedor Exemplo",
		DueDate:           due,
		Value:             decimal.RequireFromString(value),
		Status:            entity.Status(status),
	}
}

func TestComputeAgendaSummary_Buckets(t *testing.T) {
	now := date(2024, time.March, 15)
	start := date(2024, time.March, 10)
	end := date(2024, time.March, 20)

	items := []finance.AgendaItem{
		item("pending", date(2024, time.March, 12), "100.00"),  // pending + upcoming
		item("Pendente", date(2024, time.April, 5), "50.00"),   // pending, fora da janela
		item("PROTESTADO", date(2024, time.March, 20), "30.00"), // protest + upcoming (borda inclusiva)
		item("cancelado", date(2024, time.March, 14), "20.00"),  // cancelled, nunca upcoming
		item("Pago", date(2024, time.March, 2), "80.00"),        // paid no mês corrente
		item("paid", date(2024, time.February, 28), "999.00"),   // paid em outro mês: fora
	}

	s := finance.ComputeAgendaSummaryAt(items, start, end, now)

	assert.Equal(t, "130.00", s.Upcoming.TotalValue.StringFixed(2))
	assert.Equal(t, 2, s.Upcoming.Installments)

	assert.Equal(t, "150.00", s.Pending.TotalValue.StringFixed(2), "pending ignora a janela")
	assert.Equal(t, 2, s.Pending.Installments)

	assert.Equal(t, "30.00", s.Protest.TotalValue.StringFixed(2))
	assert.Equal(t, 1, s.Protest.Installments)

	assert.Equal(t, "20.00", s.Cancelled.TotalValue.StringFixed(2))
	assert.Equal(t, 1, s.Cancelled.Installments)

	assert.Equal(t, "80.00", s.PaidThisMonth.TotalValue.StringFixed(2), "só o mês-calendário de now conta")
	assert.Equal(t, 1, s.PaidThisMonth.Installments)
}

// TestComputeAgendaSummary_JanelaInclusiva vencimento no próprio dia de
// periodEnd ainda entra em upcoming, a qualquer hora do dia.
func TestComputeAgendaSummary_JanelaInclusiva(t *testing.T) {
	end := date(2024, time.March, 20)
	lateInDay := time.Date(2024, time.March, 20, 18, 30, 0, 0, time.UTC)

	items := []finance.AgendaItem{
		item("pending", lateInDay, "10.00"),
		item("pending", date(2024, time.March, 21), "99.00"), // um dia depois: fora
		item("pending", date(2024, time.March, 9), "99.00"),  // um dia antes: fora
	}

	s := finance.ComputeAgendaSummaryAt(items, date(2024, time.March, 10), end, date(2024, time.March, 15))
	assert.Equal(t, "10.00", s.Upcoming.TotalValue.StringFixed(2))
	assert.Equal(t, 1, s.Upcoming.Installments)
}

func TestComputeAgendaSummary_Vazio(t *testing.T) {
	s := finance.ComputeAgendaSummaryAt(nil, date(2024, time.March, 1), date(2024, time.March, 31), date(2024, time.March, 15))
	for _, name := range finance.BucketNames {
		b := s.Bucket(name)
		assert.True(t, b.TotalValue.IsZero(), "bucket %s deve totalizar zero", name)
		assert.Equal(t, 0, b.Installments, "bucket %s deve contar zero", name)
	}
}

// TestMergeSummaries_Override bucket em override vale o recalculado mesmo
// quando o autoritativo traz valor.
func TestMergeSummaries_Override(t *testing.T) {
	auth := finance.EmptyAgendaSummary()
	auth.Pending = finance.Bucket{TotalValue: decimal.RequireFromString("500.00"), Installments: 2}
	auth.PaidThisMonth = finance.Bucket{TotalValue: decimal.RequireFromString("900.00"), Installments: 3}

	local := finance.EmptyAgendaSummary()
	local.Pending = finance.Bucket{TotalValue: decimal.RequireFromString("300.00"), Installments: 1}
	local.PaidThisMonth = finance.Bucket{TotalValue: decimal.RequireFromString("100.00"), Installments: 1}

	merged := finance.MergeSummaries(auth, local, finance.DefaultOverrideBuckets)

	assert.Equal(t, "300.00", merged.Pending.TotalValue.StringFixed(2), "pending está em override: vale o recalculado")
	assert.Equal(t, 1, merged.Pending.Installments)

	assert.Equal(t, "900.00", merged.PaidThisMonth.TotalValue.StringFixed(2), "paidThisMonth fora do override: vale o autoritativo")
	assert.Equal(t, 3, merged.PaidThisMonth.Installments)
}

// TestMergeSummaries_FallbackParaRecalculado bucket autoritativo zerado cede
// lugar ao recalculado mesmo fora do override.
func TestMergeSummaries_FallbackParaRecalculado(t *testing.T) {
	auth := finance.EmptyAgendaSummary()
	local := finance.EmptyAgendaSummary()
	local.PaidThisMonth = finance.Bucket{TotalValue: decimal.RequireFromString("42.00"), Installments: 1}

	merged := finance.MergeSummaries(auth, local, finance.DefaultOverrideBuckets)
	assert.Equal(t, "42.00", merged.PaidThisMonth.TotalValue.StringFixed(2))
	assert.Equal(t, 1, merged.PaidThisMonth.Installments)
}

// TestMergeSummaries_SemBucketAusente todos os buckets saem definidos, com
// zero canônico quando nenhum lado tem dado.
func TestMergeSummaries_SemBucketAusente(t *testing.T) {
	merged := finance.MergeSummaries(finance.EmptyAgendaSummary(), finance.EmptyAgendaSummary(), nil)
	for _, name := range finance.BucketNames {
		b := merged.Bucket(name)
		assert.Equal(t, "0.00", b.TotalValue.StringFixed(2), "bucket %s", name)
		assert.Equal(t, 0, b.Installments, "bucket %s", name)
	}
}
