package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder publishes computation-cycle metrics to Prometheus.
type Recorder struct {
	cyclesTotal   prometheus.Counter
	fetchErrors   *prometheus.CounterVec
	degradedTotal *prometheus.CounterVec
	sureness      *prometheus.GaugeVec
	lastPrice     *prometheus.GaugeVec
	cycleDuration prometheus.Histogram
}

// New creates a Recorder registered on the default registry.
func New() *Recorder {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates a Recorder registered on the given registerer.
func NewWith(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "smartsignals_cycles_total",
			Help: "Total number of completed computation cycles",
		}),
		fetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smartsignals_fetch_errors_total",
			Help: "Total number of collaborator fetch failures",
		}, []string{"source"}),
		degradedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smartsignals_degraded_signals_total",
			Help: "Total number of signals built from degraded data",
		}, []string{"symbol"}),
		sureness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "smartsignals_sureness",
			Help: "Latest sureness score per underlying",
		}, []string{"symbol"}),
		lastPrice: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "smartsignals_last_price",
			Help: "Latest fetched price per underlying",
		}, []string{"symbol"}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "smartsignals_cycle_duration_seconds",
			Help:    "Duration of full computation cycles in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordCycle records one completed cycle and its duration.
func (r *Recorder) RecordCycle(seconds float64) {
	r.cyclesTotal.Inc()
	r.cycleDuration.Observe(seconds)
}

// RecordFetchError records a collaborator fetch failure.
func (r *Recorder) RecordFetchError(source string) {
	r.fetchErrors.WithLabelValues(source).Inc()
}

// RecordSignal records the outcome of one per-underlying signal build.
func (r *Recorder) RecordSignal(symbol string, sureness float64, price *float64, degraded bool) {
	r.sureness.WithLabelValues(symbol).Set(sureness)
	if price != nil {
		r.lastPrice.WithLabelValues(symbol).Set(*price)
	}
	if degraded {
		r.degradedTotal.WithLabelValues(symbol).Inc()
	}
}
