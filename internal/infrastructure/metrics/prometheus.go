// Package metrics expone contadores de negocio en formato Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
)

const namespace = "bloodbank"

var _ ports.Recorder = (*Prometheus)(nil)

// Prometheus implementa ports.Recorder sobre un registry propio.
type Prometheus struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	deltas      *prometheus.CounterVec
	levels      *prometheus.GaugeVec
	httpReqs    *prometheus.CounterVec
}

// NewPrometheus registra las métricas. withRuntime agrega los collectors de proceso y Go.
func NewPrometheus(withRuntime bool) *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_transitions_total",
			Help:      "Solicitudes que entraron a cada estado.",
		}, []string{"status"}),
		deltas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_units_total",
			Help:      "Unidades sumadas o retiradas del stock por grupo.",
		}, []string{"blood_group", "direction"}),
		levels: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stock_units",
			Help:      "Unidades disponibles por grupo tras la última actualización.",
		}, []string{"blood_group"}),
		httpReqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método y código.",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(p.transitions, p.deltas, p.levels, p.httpReqs)
	if withRuntime {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return p
}

func (p *Prometheus) RequestTransition(status string) {
	p.transitions.WithLabelValues(status).Inc()
}

func (p *Prometheus) StockDelta(bloodGroup string, delta int) {
	switch {
	case delta > 0:
		p.deltas.WithLabelValues(bloodGroup, "in").Add(float64(delta))
	case delta < 0:
		p.deltas.WithLabelValues(bloodGroup, "out").Add(float64(-delta))
	}
}

func (p *Prometheus) StockLevel(bloodGroup string, quantity int) {
	p.levels.WithLabelValues(bloodGroup).Set(float64(quantity))
}

// HTTPRequest cuenta una petición atendida.
func (p *Prometheus) HTTPRequest(method, code string) {
	p.httpReqs.WithLabelValues(method, code).Inc()
}

// Registry acceso directo para tests.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler handler HTTP de exposición.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
