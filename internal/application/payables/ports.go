package payables

import (
	"context"
	"time"

	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

// StatusChangedEvent evento emitido após uma transição de status de parcela.
type StatusChangedEvent struct {
	PayableID         string        `json:"payable_id"`
	PayableCode       string        `json:"payable_code"`
	CompanyID         string        `json:"company_id"`
	InstallmentNumber int           `json:"installment_number"`
	From              entity.Status `json:"from"`
	To                entity.Status `json:"to"`
	ChangedBy         string        `json:"changed_by,omitempty"`
	OccurredAt        time.Time     `json:"occurred_at"`
}

// EventPublisher porta de publicação de eventos de domínio. Implementações
// não devem bloquear o caminho crítico: falha de publicação é logada, nunca
// propagada.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent)
}

// MetricsRecorder porta de métricas do módulo de contas a pagar.
type MetricsRecorder interface {
	RecordTransition(from, to entity.Status)
	RecordAgendaComputed()
}

// AgendaExporter porta de exportação da agenda (PDF, planilha).
type AgendaExporter interface {
	Export(periodStart, periodEnd time.Time, summary finance.AgendaSummary, items []finance.AgendaItem) ([]byte, error)
}
