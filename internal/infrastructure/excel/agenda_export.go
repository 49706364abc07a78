// Package excel implementa a exportação da agenda de pagamentos em XLSX.
package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

var _ payables.AgendaExporter = (*AgendaExport)(nil)

// AgendaExport implementa payables.AgendaExporter usando excelize.
// Gera duas abas: resumo por bucket e a lista de parcelas do período.
type AgendaExport struct{}

// NewAgendaExport constrói o exportador.
func NewAgendaExport() *AgendaExport {
	return &AgendaExport{}
}

// Export gera o XLSX da agenda e devolve seus bytes.
func (e *AgendaExport) Export(periodStart, periodEnd time.Time, summary finance.AgendaSummary, items []finance.AgendaItem) ([]byte, error) {
	f := excelize.NewFile()
	resumoSheet := "Resumo"
	parcelasSheet := "Parcelas"
	f.SetSheetName("Sheet1", resumoSheet)
	if _, err := f.NewSheet(parcelasSheet); err != nil {
		return nil, fmt.Errorf("xlsx: criar aba de parcelas: %w", err)
	}

	_ = f.SetCellValue(resumoSheet, "A1", "Agenda de Pagamentos")
	_ = f.SetCellValue(resumoSheet, "A2", "Período")
	_ = f.SetCellValue(resumoSheet, "B2", fmt.Sprintf("%s a %s",
		periodStart.Format("02/01/2006"), periodEnd.Format("02/01/2006")))

	_ = f.SetCellValue(resumoSheet, "A4", "Bucket")
	_ = f.SetCellValue(resumoSheet, "B4", "Total")
	_ = f.SetCellValue(resumoSheet, "C4", "Parcelas")
	buckets := []struct {
		label  string
		bucket finance.Bucket
	}{
		{"A vencer no período", summary.Upcoming},
		{"Pendente", summary.Pending},
		{"Em protesto", summary.Protest},
		{"Cancelado", summary.Cancelled},
		{"Pago no mês", summary.PaidThisMonth},
	}
	for i, b := range buckets {
		row := i + 5
		_ = f.SetCellValue(resumoSheet, fmt.Sprintf("A%d", row), b.label)
		_ = f.SetCellValue(resumoSheet, fmt.Sprintf("B%d", row), b.bucket.TotalValue.InexactFloat64())
		_ = f.SetCellValue(resumoSheet, fmt.Sprintf("C%d", row), b.bucket.Installments)
	}

	headers := []string{"Vencimento", "Título", "Parcela", "Fornecedor", "Documento", "Status", "Valor"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(parcelasSheet, cell, h)
	}
	for i, it := range items {
		row := i + 2
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("A%d", row), it.DueDate.Format("02/01/2006"))
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("B%d", row), it.PayableCode)
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("C%d", row), it.InstallmentNumber)
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("D%d", row), it.PartyName)
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("E%d", row), it.Document)
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("F%d", row), statusLabel(it.Status))
		_ = f.SetCellValue(parcelasSheet, fmt.Sprintf("G%d", row), it.Value.InexactFloat64())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func statusLabel(s entity.Status) string {
	switch finance.CanonicalStatus(string(s)) {
	case entity.StatusPaid:
		return "Pago"
	case entity.StatusProtest:
		return "Em protesto"
	case entity.StatusCancelled:
		return "Cancelado"
	default:
		return "Pendente"
	}
}
