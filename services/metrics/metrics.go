package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trezcool/elimu/core/school"
)

const namespace = "elimu"

// Recorder counts store mutations and saves into its own prometheus registry.
type Recorder struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	durations *prometheus.HistogramVec
	saves     *prometheus.CounterVec
}

var _ school.Recorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	rec := &Recorder{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Store mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_duration_seconds",
			Help:      "Time spent applying a mutation, save included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Dataset saves by outcome.",
		}, []string{"outcome"}),
	}
	rec.registry.MustRegister(
		rec.mutations,
		rec.durations,
		rec.saves,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return rec
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (rec *Recorder) ObserveMutation(op string, err error, dur time.Duration) {
	rec.mutations.WithLabelValues(op, outcome(err)).Inc()
	rec.durations.WithLabelValues(op).Observe(dur.Seconds())
}

func (rec *Recorder) ObserveSave(err error) {
	rec.saves.WithLabelValues(outcome(err)).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (rec *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(rec.registry, promhttp.HandlerOpts{Registry: rec.registry})
}
