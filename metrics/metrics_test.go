package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/metrics"
)

func TestNew_NilRegisterer(t *testing.T) {
	c, err := metrics.New(nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, metrics.ErrNilRegisterer)
}

func TestNew_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestCollector_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.Observe(&dijkstra.Result{
		Solved: true,
		Cost:   12521,
		Stats:  dijkstra.Stats{Expanded: 100, Stale: 7, MaxFrontier: 40, Distinct: 150},
	}, 20*time.Millisecond)
	c.Observe(&dijkstra.Result{
		Stats: dijkstra.Stats{Expanded: 5, MaxFrontier: 3, Distinct: 6},
	}, time.Millisecond)
	c.Observe(nil, time.Millisecond)

	want := `
# HELP burrow_solves_total Total searches by outcome
# TYPE burrow_solves_total counter
burrow_solves_total{outcome="error"} 1
burrow_solves_total{outcome="solved"} 1
burrow_solves_total{outcome="unsolvable"} 1
# HELP burrow_states_expanded_total Total states whose moves were generated
# TYPE burrow_states_expanded_total counter
burrow_states_expanded_total 105
# HELP burrow_stale_pops_total Total frontier entries skipped as outdated
# TYPE burrow_stale_pops_total counter
burrow_stale_pops_total 7
# HELP burrow_frontier_peak Largest frontier seen by the most recent search
# TYPE burrow_frontier_peak gauge
burrow_frontier_peak 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"burrow_solves_total", "burrow_states_expanded_total",
		"burrow_stale_pops_total", "burrow_frontier_peak"))

	n, err := testutil.GatherAndCount(reg, "burrow_solve_duration_seconds", "burrow_distinct_states")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector
	assert.NotPanics(t, func() { c.Observe(&dijkstra.Result{}, time.Second) })
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)
	c.Observe(&dijkstra.Result{Solved: true}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "burrow.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `burrow_solves_total{outcome="solved"} 1`)

	err = metrics.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg)
	assert.Error(t, err)
}
