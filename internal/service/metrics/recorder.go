package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pricewatch"

// Recorder 把监控周期的事件记录为 prometheus 指标
type Recorder struct {
	cycles     prometheus.Counter
	signals    *prometheus.CounterVec
	failures   *prometheus.CounterVec
	divergence *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "cycles_total",
			Help:      "Analysis cycles started",
		}),
		signals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "signals_total",
			Help:      "Divergence signals emitted by type",
		}, []string{"type"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "failures_total",
			Help:      "Failures by pipeline stage",
		}, []string{"stage"}),
		divergence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "divergence_percent",
			Help:      "Last observed local vs global divergence in percent",
		}, []string{"asset"}),
	}
	reg.MustRegister(r.cycles, r.signals, r.failures, r.divergence)
	return r
}

func (r *Recorder) IncCycle() {
	r.cycles.Inc()
}

func (r *Recorder) IncSignal(signalType string) {
	r.signals.WithLabelValues(signalType).Inc()
}

func (r *Recorder) IncFailure(stage string) {
	r.failures.WithLabelValues(stage).Inc()
}

func (r *Recorder) ObserveDivergence(asset string, pct float64) {
	r.divergence.WithLabelValues(asset).Set(pct)
}
