// Package metrics exposes search effort as Prometheus collectors.
//
// A Recorder is bound to one prometheus.Registerer; pass a fresh
// prometheus.NewRegistry() per process (or per test) to avoid duplicate
// registration. A nil Recorder is valid and records nothing.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/valvenet/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Mode labels.
const (
	ModeSingle = "single"
	ModeDual   = "dual"
)

// Recorder groups the search collectors.
type Recorder struct {
	States   *prometheus.CounterVec
	Pruned   *prometheus.CounterVec
	Memo     *prometheus.GaugeVec
	Duration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice on the same
// Registerer panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		States: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "valvenet_search_states_total",
				Help: "Search states expanded",
			},
			[]string{"mode"},
		),
		Pruned: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "valvenet_search_pruned_total",
				Help: "Search states cut by the optimistic bound",
			},
			[]string{"mode"},
		),
		Memo: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "valvenet_memo_entries",
				Help: "Distinct OpenSets in the last score memo",
			},
			[]string{"mode"},
		),
		// Buckets span sub-millisecond toy networks to multi-second 15+ valve runs.
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "valvenet_search_duration_seconds",
				Help:    "Wall time of one search",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"mode"},
		),
	}
}

// Observe records one finished search.
func (r *Recorder) Observe(mode string, st search.Stats, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.States.WithLabelValues(mode).Add(float64(st.States))
	r.Pruned.WithLabelValues(mode).Add(float64(st.Pruned))
	r.Memo.WithLabelValues(mode).Set(float64(st.MemoEntries))
	r.Duration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// Dump writes every family gathered from g in the text exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
