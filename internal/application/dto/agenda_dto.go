package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgendaBucketDTO total e contagem de um bucket do resumo da agenda.
type AgendaBucketDTO struct {
	TotalValue     decimal.Decimal `json:"total_value"`
	TotalFormatted string          `json:"total_formatted"`
	Installments   int             `json:"installments"`
}

// AgendaSummaryDTO os cinco buckets do painel, sempre todos presentes.
type AgendaSummaryDTO struct {
	Upcoming      AgendaBucketDTO `json:"upcoming"`
	Pending       AgendaBucketDTO `json:"pending"`
	Protest       AgendaBucketDTO `json:"protest"`
	Cancelled     AgendaBucketDTO `json:"cancelled"`
	PaidThisMonth AgendaBucketDTO `json:"paid_this_month"`
}

// AgendaItemDTO linha da agenda de pagamentos.
type AgendaItemDTO struct {
	PayableID         string          `json:"payable_id"`
	PayableCode       string          `json:"payable_code"`
	InstallmentNumber int             `json:"installment_number"`
	PartyName         string          `json:"party_name"`
	Document          string          `json:"document,omitempty"`
	DueDate           time.Time       `json:"due_date"`
	Value             decimal.Decimal `json:"value"`
	ValueFormatted    string          `json:"value_formatted"`
	Status            string          `json:"status"`
}

// AgendaResponse resposta de GET /api/payables/agenda.
type AgendaResponse struct {
	PeriodStart time.Time        `json:"period_start"`
	PeriodEnd   time.Time        `json:"period_end"`
	Summary     AgendaSummaryDTO `json:"summary"`
	Items       []AgendaItemDTO  `json:"items"`
}
