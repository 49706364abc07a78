// Package metrics expõe contadores Prometheus do módulo de contas a pagar.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
)

const metricPrefix = "backoffice_"

var _ payables.MetricsRecorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder implementa payables.MetricsRecorder com contadores
// registrados no registry dado.
type PrometheusRecorder struct {
	transitions *prometheus.CounterVec
	agendaRuns  prometheus.Counter
}

// NewPrometheusRecorder cria e registra os coletores. registerer nil usa o
// registry default.
func NewPrometheusRecorder(registerer prometheus.Registerer) *PrometheusRecorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	r := &PrometheusRecorder{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "installment_transitions_total",
				Help: "Transições de status de parcela, por origem e destino.",
			},
			[]string{"from", "to"},
		),
		agendaRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "agenda_computed_total",
				Help: "Quantidade de resumos da agenda de pagamentos calculados.",
			},
		),
	}
	registerer.MustRegister(r.transitions, r.agendaRuns)
	return r
}

// RecordTransition incrementa o contador da aresta de transição.
func (r *PrometheusRecorder) RecordTransition(from, to entity.Status) {
	r.transitions.WithLabelValues(string(from), string(to)).Inc()
}

// RecordAgendaComputed incrementa o contador de resumos calculados.
func (r *PrometheusRecorder) RecordAgendaComputed() {
	r.agendaRuns.Inc()
}
