// Package metrics exposes the Prometheus instrumentation a running
// parser accumulates: per-sentence parse duration, the null count of
// each returned linkage, and how often a sentence exhausts its resource
// budget. Memo hit/miss counters are defined as well, but no parser
// stage increments them. This is ambient observability the core itself never
// strictly needs, but a parser that runs in production never ships
// without it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder is the narrow interface internal/sentence depends on, so
// tests can inject a no-op implementation instead of touching the
// default Prometheus registry.
type Recorder interface {
	ObserveParseDuration(seconds float64)
	ObserveNullCount(n int)
	IncMemoHit()
	IncMemoMiss()
	IncResourceExhausted()
}

// PrometheusRecorder is the production Recorder, registered once per
// process against a prometheus.Registerer (cmd/lgserver passes its own
// prometheus.NewRegistry()).
type PrometheusRecorder struct {
	parseDuration prometheus.Histogram
	nullCount     prometheus.Histogram
	memoHits      prometheus.Counter
	memoMisses    prometheus.Counter
	exhausted     prometheus.Counter
}

// NewPrometheusRecorder builds and registers a PrometheusRecorder's
// metrics against reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		parseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lgcore",
			Name:      "parse_duration_seconds",
			Help:      "Wall-clock time spent parsing one sentence.",
			Buckets:   prometheus.DefBuckets,
		}),
		nullCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lgcore",
			Name:      "linkage_null_count",
			Help:      "Null-word count of each linkage returned.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		memoHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lgcore",
			Name:      "count_memo_hits_total",
			Help:      "Counting-recursion memo table hits.",
		}),
		memoMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lgcore",
			Name:      "count_memo_misses_total",
			Help:      "Counting-recursion memo table misses.",
		}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lgcore",
			Name:      "resource_exhausted_total",
			Help:      "Sentences that hit their parse-time or memory budget before finishing.",
		}),
	}
	reg.MustRegister(r.parseDuration, r.nullCount, r.memoHits, r.memoMisses, r.exhausted)
	return r
}

func (r *PrometheusRecorder) ObserveParseDuration(seconds float64) { r.parseDuration.Observe(seconds) }
func (r *PrometheusRecorder) ObserveNullCount(n int)                { r.nullCount.Observe(float64(n)) }
func (r *PrometheusRecorder) IncMemoHit()                           { r.memoHits.Inc() }
func (r *PrometheusRecorder) IncMemoMiss()                          { r.memoMisses.Inc() }
func (r *PrometheusRecorder) IncResourceExhausted()                 { r.exhausted.Inc() }

// Noop discards every observation; it is the default Recorder for
// callers (and tests) that do not care about metrics.
type Noop struct{}

func (Noop) ObserveParseDuration(float64) {}
func (Noop) ObserveNullCount(int)         {}
func (Noop) IncMemoHit()                  {}
func (Noop) IncMemoMiss()                 {}
func (Noop) IncResourceExhausted()        {}

var _ Recorder = (*PrometheusRecorder)(nil)
var _ Recorder = Noop{}
