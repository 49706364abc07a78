// Package pdf implementa a exportação da agenda de pagamentos em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agenda de Pagamentos │ Período + data de emissão   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: A vencer | Pendente | Protesto | Cancelado | Pago  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Venc. | Título | Parc. | Fornecedor | Status | R$  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
	"github.com/raizvet/backoffice-api/internal/domain/finance"
)

var _ payables.AgendaExporter = (*AgendaReport)(nil)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Rótulos dos status para exibição.
var statusLabels = map[entity.Status]string{
	entity.StatusPending:   "Pendente",
	entity.StatusPaid:      "Pago",
	entity.StatusProtest:   "Em protesto",
	entity.StatusCancelled: "Cancelado",
}

// AgendaReport implementa payables.AgendaExporter usando Maroto v2.
type AgendaReport struct {
	companyName string
}

// NewAgendaReport constrói o gerador. companyName aparece no cabeçalho.
func NewAgendaReport(companyName string) *AgendaReport {
	return &AgendaReport{companyName: companyName}
}

// Export gera o PDF da agenda e devolve seus bytes.
func (g *AgendaReport) Export(periodStart, periodEnd time.Time, summary finance.AgendaSummary, items []finance.AgendaItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda de Pagamentos", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.companyName, periodStart, periodEnd))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título do relatório (esq) e período + emissão (dir).
func headerRow(companyName string, periodStart, periodEnd time.Time) core.Row {
	periodo := fmt.Sprintf("%s a %s",
		periodStart.Format("02/01/2006"), periodEnd.Format("02/01/2006"))
	emissao := time.Now().Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("AGENDA DE PAGAMENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(companyName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Emitido em: "+emissao, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRows: um par rótulo/valor por bucket do resumo.
func summaryRows(summary finance.AgendaSummary) []core.Row {
	bucket := func(label string, b finance.Bucket) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7.5, Color: colorGray, Top: 1,
			}),
			text.New(finance.FormatBRL(b.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5, Color: colorPrimary,
			}),
			text.New(fmt.Sprintf("%d parcela(s)", b.Installments), props.Text{
				Size: 7, Top: 11, Color: colorGray,
			}),
		)
	}
	return []core.Row{
		row.New(16).Add(
			bucket("A VENCER NO PERÍODO", summary.Upcoming),
			bucket("PENDENTE", summary.Pending),
			bucket("EM PROTESTO", summary.Protest),
			bucket("CANCELADO", summary.Cancelled),
			bucket("PAGO NO MÊS", summary.PaidThisMonth),
			col.New(2),
		),
	}
}

// tableHeaderRow: cabeçalho da tabela de parcelas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Venc.", 2, align.Left),
		h("Título", 2, align.Left),
		h("Parc.", 1, align.Center),
		h("Fornecedor", 3, align.Left),
		h("Status", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tableItemRows: uma fila por parcela da agenda.
func tableItemRows(items []finance.AgendaItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.PayableCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.InstallmentNumber),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				it.PartyName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				statusLabel(it.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				finance.FormatBRL(it.Value),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func statusLabel(s entity.Status) string {
	if label, ok := statusLabels[finance.CanonicalStatus(string(s))]; ok {
		return label
	}
	return string(s)
}
