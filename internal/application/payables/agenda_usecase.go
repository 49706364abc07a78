package payables

import (
	"context"
	"sort"
	"time"

	"github.com/raizvet/backoffice-api/internal/application/dto"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
	"github.com/raizvet/backoffice-api/internal/domain/repository"
)

// DefaultAgendaRangeDays janela padrão do painel de próximos vencimentos.
const DefaultAgendaRangeDays = 7

// AgendaUseCase monta a agenda de pagamentos: itens ordenados, resumo
// recalculado localmente e mesclado com a agregação autoritativa do banco.
type AgendaUseCase struct {
	payableRepo  repository.PayableRepository
	metrics      MetricsRecorder
	pdfExporter  AgendaExporter
	xlsxExporter AgendaExporter
}

// NewAgendaUseCase constrói o caso de uso.
func NewAgendaUseCase(
	payableRepo repository.PayableRepository,
	metrics MetricsRecorder,
	pdfExporter, xlsxExporter AgendaExporter,
) *AgendaUseCase {
	return &AgendaUseCase{
		payableRepo:  payableRepo,
		metrics:      metrics,
		pdfExporter:  pdfExporter,
		xlsxExporter: xlsxExporter,
	}
}

// Agenda devolve o painel do período [start, start+rangeDays-1], inclusivo.
// A agregação do banco manda nos buckets que o recálculo local não cobre com
// segurança; os demais são sempre recalculados a partir dos itens carregados.
func (uc *AgendaUseCase) Agenda(ctx context.Context, companyID string, start time.Time, rangeDays int) (*dto.AgendaResponse, error) {
	start, end := agendaWindow(start, rangeDays)
	now := time.Now().UTC()

	items, err := uc.payableRepo.ListAgendaItems(ctx, companyID, nil, nil)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Status = finance.CanonicalStatus(string(items[i].Status))
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].DueDate.Equal(items[j].DueDate) {
			return items[i].DueDate.Before(items[j].DueDate)
		}
		if items[i].PayableCode != items[j].PayableCode {
			return items[i].PayableCode < items[j].PayableCode
		}
		return items[i].InstallmentNumber < items[j].InstallmentNumber
	})

	recomputed := finance.ComputeAgendaSummaryAt(items, start, end, now)

	// Falha na agregação do banco não derruba o painel: o merge degrada
	// para o resumo recalculado.
	authoritative, err := uc.payableRepo.SummarizeAgenda(ctx, companyID, start, end, now)
	if err != nil {
		authoritative = finance.EmptyAgendaSummary()
	}
	merged := finance.MergeSummaries(authoritative, recomputed, finance.DefaultOverrideBuckets)

	if uc.metrics != nil {
		uc.metrics.RecordAgendaComputed()
	}

	out := &dto.AgendaResponse{
		PeriodStart: start,
		PeriodEnd:   end,
		Summary:     toAgendaSummaryDTO(merged),
		Items:       make([]dto.AgendaItemDTO, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.AgendaItemDTO{
			PayableID:         item.PayableID,
			PayableCode:       item.PayableCode,
			InstallmentNumber: item.InstallmentNumber,
			PartyName:         item.PartyName,
			Document:          item.Document,
			DueDate:           item.DueDate,
			Value:             item.Value,
			ValueFormatted:    finance.FormatBRL(item.Value),
			Status:            string(item.Status),
		})
	}
	return out, nil
}

// ExportPDF gera o relatório da agenda em PDF.
func (uc *AgendaUseCase) ExportPDF(ctx context.Context, companyID string, start time.Time, rangeDays int) ([]byte, error) {
	return uc.export(ctx, companyID, start, rangeDays, uc.pdfExporter)
}

// ExportXLSX gera a planilha da agenda.
func (uc *AgendaUseCase) ExportXLSX(ctx context.Context, companyID string, start time.Time, rangeDays int) ([]byte, error) {
	return uc.export(ctx, companyID, start, rangeDays, uc.xlsxExporter)
}

func (uc *AgendaUseCase) export(ctx context.Context, companyID string, start time.Time, rangeDays int, exporter AgendaExporter) ([]byte, error) {
	start, end := agendaWindow(start, rangeDays)
	now := time.Now().UTC()

	items, err := uc.payableRepo.ListAgendaItems(ctx, companyID, nil, nil)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Status = finance.CanonicalStatus(string(items[i].Status))
	}
	summary := finance.ComputeAgendaSummaryAt(items, start, end, now)
	return exporter.Export(start, end, summary, items)
}

// agendaWindow normaliza a janela: start zerado vira hoje; o fim é inclusivo,
// start + (rangeDays-1) dias.
func agendaWindow(start time.Time, rangeDays int) (time.Time, time.Time) {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	if rangeDays <= 0 {
		rangeDays = DefaultAgendaRangeDays
	}
	y, m, d := start.UTC().Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, rangeDays-1)
}

func toAgendaSummaryDTO(s finance.AgendaSummary) dto.AgendaSummaryDTO {
	return dto.AgendaSummaryDTO{
		Upcoming:      toBucketDTO(s.Upcoming),
		Pending:       toBucketDTO(s.Pending),
		Protest:       toBucketDTO(s.Protest),
		Cancelled:     toBucketDTO(s.Cancelled),
		PaidThisMonth: toBucketDTO(s.PaidThisMonth),
	}
}

func toBucketDTO(b finance.Bucket) dto.AgendaBucketDTO {
	return dto.AgendaBucketDTO{
		TotalValue:     b.TotalValue,
		TotalFormatted: finance.FormatBRL(b.TotalValue),
		Installments:   b.Installments,
	}
}
