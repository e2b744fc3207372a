package batch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/burrow/amphipod"
	"github.com/katalvlaran/burrow/batch"
	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const exampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

// BatchSuite shares parsed puzzles across batch tests.
type BatchSuite struct {
	suite.Suite
	example   amphipod.State
	organized amphipod.State
	stuck     amphipod.State
}

func (s *BatchSuite) SetupSuite() {
	var err error
	s.example, err = diagram.ParseString(exampleDiagram)
	s.Require().NoError(err)

	s.organized, err = diagram.ParseString(`#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########`)
	s.Require().NoError(err)

	var rooms [amphipod.RoomCount]amphipod.Room
	for i, k := range amphipod.Kinds() {
		rooms[i], err = amphipod.NewRoom(k, 1)
		s.Require().NoError(err)
	}
	s.Require().NoError(rooms[0].Put(0, amphipod.Bronze))
	s.stuck, err = amphipod.NewState(amphipod.Hallway{}, rooms)
	s.Require().NoError(err)
}

// TestOrder verifies outcomes line up with inputs regardless of finish order.
func (s *BatchSuite) TestOrder() {
	r := &batch.Runner{Workers: 3}
	out, err := r.Run(context.Background(), []batch.Puzzle{
		{Name: "example", State: s.example},
		{Name: "organized", State: s.organized},
		{Name: "stuck", State: s.stuck},
	})
	s.Require().NoError(err)
	s.Require().Len(out, 3)

	s.Equal("example", out[0].Puzzle.Name)
	s.True(out[0].Result.Solved)
	s.Equal(int64(12521), out[0].Result.Cost)

	s.Equal("organized", out[1].Puzzle.Name)
	s.True(out[1].Result.Solved)
	s.Equal(int64(0), out[1].Result.Cost)

	s.Equal("stuck", out[2].Puzzle.Name)
	s.False(out[2].Result.Solved)

	seen := map[string]bool{}
	for _, o := range out {
		_, err := uuid.Parse(o.RunID)
		s.NoError(err)
		s.False(seen[o.RunID], "run IDs must be unique")
		seen[o.RunID] = true
	}
}

// TestSingleWorker runs sequentially with options forwarded to every search.
func (s *BatchSuite) TestSingleWorker() {
	r := &batch.Runner{Workers: 1, Options: []dijkstra.Option{dijkstra.WithReturnPath()}}
	out, err := r.Run(context.Background(), []batch.Puzzle{
		{Name: "a", State: s.example},
		{Name: "b", State: s.example},
	})
	s.Require().NoError(err)
	for _, o := range out {
		s.NotEmpty(o.Result.Path)
		s.Equal(int64(12521), o.Result.Cost)
	}
}

// TestLoggingAndMetrics checks one log line and one observation per puzzle.
func (s *BatchSuite) TestLoggingAndMetrics() {
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	s.Require().NoError(err)

	r := &batch.Runner{Workers: 2, Logger: zap.New(core), Metrics: col}
	_, err = r.Run(context.Background(), []batch.Puzzle{
		{Name: "organized", State: s.organized},
		{Name: "stuck", State: s.stuck},
	})
	s.Require().NoError(err)

	s.Equal(2, logs.FilterMessage("search finished").Len())
	for _, e := range logs.All() {
		s.Contains(e.ContextMap(), "run_id")
	}
	s.NoError(testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP burrow_solves_total Total searches by outcome
# TYPE burrow_solves_total counter
burrow_solves_total{outcome="solved"} 1
burrow_solves_total{outcome="unsolvable"} 1
`), "burrow_solves_total"))
}

// TestSearchLogsCarryRunFields keeps run_id and puzzle on search lines even
// when the forwarded options bring their own logger.
func (s *BatchSuite) TestSearchLogsCarryRunFields() {
	core, logs := observer.New(zap.DebugLevel)
	r := &batch.Runner{
		Workers: 1,
		Logger:  zap.New(core),
		Options: []dijkstra.Option{dijkstra.WithLogger(zap.NewNop())},
	}
	out, err := r.Run(context.Background(), []batch.Puzzle{{Name: "organized", State: s.organized}})
	s.Require().NoError(err)

	started := logs.FilterMessage("search started").All()
	s.Require().Len(started, 1)
	s.Equal(out[0].RunID, started[0].ContextMap()["run_id"])
	s.Equal("organized", started[0].ContextMap()["puzzle"])
}

// TestSearchError surfaces a failing puzzle by name.
func (s *BatchSuite) TestSearchError() {
	r := &batch.Runner{Workers: 2}
	_, err := r.Run(context.Background(), []batch.Puzzle{
		{Name: "broken", State: amphipod.State{}},
	})
	s.ErrorIs(err, dijkstra.ErrInvalidState)
	s.Contains(err.Error(), "broken")
}

// TestCanceled refuses to start work on a canceled context.
func (s *BatchSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &batch.Runner{}
	_, err := r.Run(ctx, []batch.Puzzle{{Name: "example", State: s.example}})
	s.ErrorIs(err, context.Canceled)
}

func TestBatchSuite(t *testing.T) {
	suite.Run(t, new(BatchSuite))
}

func TestRun_NoPuzzles(t *testing.T) {
	_, err := (&batch.Runner{}).Run(context.Background(), nil)
	assert.ErrorIs(t, err, batch.ErrNoPuzzles)
}
