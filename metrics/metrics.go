// Package metrics exposes Prometheus collectors for burrow searches.
//
// Collectors are registered on a caller-supplied Registerer so tests and
// short-lived CLI runs do not touch the global default registry.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/burrow/dijkstra"
)

// ErrNilRegisterer is returned by New when no Registerer is given.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Outcome label values for burrow_solves_total.
const (
	OutcomeSolved     = "solved"
	OutcomeUnsolvable = "unsolvable"
	OutcomeError      = "error"
)

// Collector records per-search statistics.
type Collector struct {
	solves       *prometheus.CounterVec
	expanded     prometheus.Counter
	stale        prometheus.Counter
	frontierPeak prometheus.Gauge
	distinct     prometheus.Histogram
	duration     prometheus.Histogram
}

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "burrow_solves_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_states_expanded_total",
			Help: "Total states whose moves were generated",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_stale_pops_total",
			Help: "Total frontier entries skipped as outdated",
		}),
		frontierPeak: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "burrow_frontier_peak",
			Help: "Largest frontier seen by the most recent search",
		}),
		distinct: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "burrow_distinct_states",
			Help:    "Distinct states recorded per search",
			Buckets: prometheus.ExponentialBuckets(10, 10, 7), // 10 to 10M
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "burrow_solve_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
	}

	for _, col := range []prometheus.Collector{
		c.solves, c.expanded, c.stale, c.frontierPeak, c.distinct, c.duration,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Observe records one finished search. A nil result counts as an error.
// Observe on a nil Collector is a no-op.
func (c *Collector) Observe(res *dijkstra.Result, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.duration.Observe(elapsed.Seconds())

	switch {
	case res == nil:
		c.solves.WithLabelValues(OutcomeError).Inc()
		return
	case res.Solved:
		c.solves.WithLabelValues(OutcomeSolved).Inc()
	default:
		c.solves.WithLabelValues(OutcomeUnsolvable).Inc()
	}

	c.expanded.Add(float64(res.Stats.Expanded))
	c.stale.Add(float64(res.Stats.Stale))
	c.frontierPeak.Set(float64(res.Stats.MaxFrontier))
	c.distinct.Observe(float64(res.Stats.Distinct))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
