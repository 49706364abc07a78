package finance

import (
	"time"

	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Nomes dos buckets do resumo da agenda.
const (
	BucketUpcoming      = "upcoming"
	BucketPending       = "pending"
	BucketProtest       = "protest"
	BucketCancelled     = "cancelled"
	BucketPaidThisMonth = "paidThisMonth"
)

// BucketNames todos os buckets, na ordem de exibição do painel.
var BucketNames = []string{
	BucketUpcoming, BucketPending, BucketProtest, BucketCancelled, BucketPaidThisMonth,
}

// DefaultOverrideBuckets buckets recalculáveis diretamente da lista de itens
// que o caller já tem em mãos; paidThisMonth fica de fora porque atravessar
// viradas de mês corretamente exige a consulta autoritativa.
var DefaultOverrideBuckets = []string{
	BucketUpcoming, BucketPending, BucketProtest, BucketCancelled,
}

// AgendaItem projeção desnormalizada de uma parcela para exibição.
// Derivada, nunca persistida pelo motor.
type AgendaItem struct {
	PayableID         string
	PayableCode       string
	InstallmentNumber int
	PartyName         string
	Document          string
	DueDate           time.Time
	Value             decimal.Decimal
	Status            entity.Status
}

// Bucket total e contagem de parcelas de um bucket do resumo.
type Bucket struct {
	TotalValue   decimal.Decimal
	Installments int
}

func (b Bucket) isZero() bool {
	return b.Installments == 0 && b.TotalValue.IsZero()
}

// AgendaSummary resumo da agenda de pagamentos, bucket a bucket. Totais
// sempre com 2 casas; contagens nunca negativas.
type AgendaSummary struct {
	Upcoming      Bucket
	Pending       Bucket
	Protest       Bucket
	Cancelled     Bucket
	PaidThisMonth Bucket
}

// EmptyAgendaSummary resumo com todos os buckets zerados (0,00 / 0).
func EmptyAgendaSummary() AgendaSummary {
	var s AgendaSummary
	for _, name := range BucketNames {
		s.setBucket(name, Bucket{TotalValue: decimal.Zero})
	}
	return s
}

// Bucket acessa um bucket pelo nome; nome desconhecido devolve bucket zero.
func (s AgendaSummary) Bucket(name string) Bucket {
	switch name {
	case BucketUpcoming:
		return s.Upcoming
	case BucketPending:
		return s.Pending
	case BucketProtest:
		return s.Protest
	case BucketCancelled:
		return s.Cancelled
	case BucketPaidThisMonth:
		return s.PaidThisMonth
	}
	return Bucket{TotalValue: decimal.Zero}
}

func (s *AgendaSummary) setBucket(name string, b Bucket) {
	switch name {
	case BucketUpcoming:
		s.Upcoming = b
	case BucketPending:
		s.Pending = b
	case BucketProtest:
		s.Protest = b
	case BucketCancelled:
		s.Cancelled = b
	case BucketPaidThisMonth:
		s.PaidThisMonth = b
	}
}

// ComputeAgendaSummary agrega os itens na janela dada usando o relógio de
// parede para o bucket paidThisMonth. Para código testável prefira
// ComputeAgendaSummaryAt.
func ComputeAgendaSummary(items []AgendaItem, periodStart, periodEnd time.Time) AgendaSummary {
	return ComputeAgendaSummaryAt(items, periodStart, periodEnd, time.Now().UTC())
}

// ComputeAgendaSummaryAt agrega os itens nos buckets do resumo:
//
//   - upcoming: status pending ou protest com vencimento dentro de
//     [periodStart, periodEnd], inclusivo até o fim do dia de periodEnd;
//   - pending / protest / cancelled: totais correntes por status,
//     independentes da janela;
//   - paidThisMonth: status paid com vencimento no mês-calendário de now.
//
// O status de cada item é canonicalizado antes do bucketing (idempotente
// para itens já canônicos). Totais arredondados a 2 casas ao final.
func ComputeAgendaSummaryAt(items []AgendaItem, periodStart, periodEnd, now time.Time) AgendaSummary {
	windowStart := startOfDayUTC(periodStart)
	windowEnd := endOfDayUTC(periodEnd)
	nowUTC := now.UTC()

	summary := EmptyAgendaSummary()
	add := func(name string, value decimal.Decimal) {
		b := summary.Bucket(name)
		b.TotalValue = b.TotalValue.Add(value)
		b.Installments++
		summary.setBucket(name, b)
	}

	for _, item := range items {
		status := CanonicalStatus(string(item.Status))
		due := item.DueDate.UTC()

		switch status {
		case entity.StatusPending:
			add(BucketPending, item.Value)
		case entity.StatusProtest:
			add(BucketProtest, item.Value)
		case entity.StatusCancelled:
			add(BucketCancelled, item.Value)
		case entity.StatusPaid:
			if sameCalendarMonth(due, nowUTC) {
				add(BucketPaidThisMonth, item.Value)
			}
		}

		if (status == entity.StatusPending || status == entity.StatusProtest) &&
			!due.Before(windowStart) && !due.After(windowEnd) {
			add(BucketUpcoming, item.Value)
		}
	}

	for _, name := range BucketNames {
		b := summary.Bucket(name)
		b.TotalValue = Round2(b.TotalValue)
		summary.setBucket(name, b)
	}
	return summary
}

// MergeSummaries combina um resumo autoritativo (ex.: agregação do backend)
// com um recalculado localmente. Para cada bucket:
//
//   - se o nome está em overrideBuckets, vale o recalculado, sempre;
//   - senão vale o autoritativo, a menos que esteja ausente/zerado — aí o
//     recalculado entra como fallback.
//
// Nenhum bucket sai ausente do merge: o default é {0,00, 0}.
func MergeSummaries(authoritative, recomputed AgendaSummary, overrideBuckets []string) AgendaSummary {
	override := make(map[string]bool, len(overrideBuckets))
	for _, name := range overrideBuckets {
		override[name] = true
	}

	merged := EmptyAgendaSummary()
	for _, name := range BucketNames {
		auth := authoritative.Bucket(name)
		local := recomputed.Bucket(name)
		switch {
		case override[name]:
			merged.setBucket(name, normalizeBucket(local))
		case auth.isZero():
			merged.setBucket(name, normalizeBucket(local))
		default:
			merged.setBucket(name, normalizeBucket(auth))
		}
	}
	return merged
}

func normalizeBucket(b Bucket) Bucket {
	if b.Installments < 0 {
		b.Installments = 0
	}
	return Bucket{TotalValue: Round2(b.TotalValue), Installments: b.Installments}
}

func startOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

func sameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
