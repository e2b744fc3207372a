// Command burrow finds the least energy needed to organize amphipod burrows.
//
// Usage:
//
//	burrow solve [--both|--unfold] [--path] [--workers N] [file...]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/burrow/batch"
	"github.com/katalvlaran/burrow/bfs"
	"github.com/katalvlaran/burrow/config"
	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/metrics"
)

// errNoInputs is returned when neither arguments nor the config name a file.
var errNoInputs = errors.New("no input files")

// cli holds flag values and the state built in PersistentPreRunE.
type cli struct {
	configPath  string
	unfold      bool
	both        bool
	workers     int
	maxCost     int64
	showPath    bool
	verbose     bool
	metricsFile string
	maxDepth    int
	maxStates   int
	showLevels  bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "burrow",
		Short: "Organize amphipod burrows with the least energy",
		Long: `burrow reads burrow diagrams and prints the minimum energy required to
move every amphipod into its own room.

Each file is solved as written; --unfold inserts the two hidden rows first,
--both prints both answers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	solve := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve one or more burrow diagrams",
		RunE:  c.solve,
	}
	solve.Flags().BoolVar(&c.unfold, "unfold", false, "Insert the two hidden rows before solving")
	solve.Flags().BoolVar(&c.both, "both", false, "Solve each file folded and unfolded")
	solve.Flags().IntVarP(&c.workers, "workers", "j", 0, "Concurrent searches (default: number of CPUs)")
	solve.Flags().Int64Var(&c.maxCost, "max-cost", 0, "Give up on routes costing more than this (0: no cap)")
	solve.Flags().BoolVarP(&c.showPath, "path", "p", false, "Print the optimal moves")
	solve.Flags().StringVar(&c.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")

	explore := &cobra.Command{
		Use:   "explore [file...]",
		Short: "Count moves and reachable states breadth-first",
		Long: `explore ignores energy and treats every legal move as one step. It
prints the fewest moves that organize each burrow and how many distinct
states were reached.`,
		RunE: c.explore,
	}
	explore.Flags().BoolVar(&c.unfold, "unfold", false, "Insert the two hidden rows before exploring")
	explore.Flags().IntVar(&c.maxDepth, "max-depth", 0, "Do not look beyond this many moves (0: no limit)")
	explore.Flags().IntVar(&c.maxStates, "max-states", 1_000_000, "Stop after recording this many states (0: no limit)")
	explore.Flags().BoolVar(&c.showLevels, "levels", false, "Print the number of states first reached at each move count")

	root.AddCommand(solve, explore)
	return root
}

// setup loads the config file, lets explicit flags override it, and builds
// the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("unfold") {
		cfg.Unfold = c.unfold
	}
	if flags.Changed("both") {
		cfg.Both = c.both
	}
	if flags.Changed("workers") {
		cfg.Workers = c.workers
	}
	if flags.Changed("max-cost") {
		cfg.MaxCost = c.maxCost
	}
	if flags.Changed("path") {
		cfg.ShowPath = c.showPath
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = c.metricsFile
	}
	if c.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	c.logger, err = cfg.Logging.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) solve(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		inputs = c.cfg.Inputs
	}
	if len(inputs) == 0 {
		return errNoInputs
	}

	puzzles, err := c.load(inputs)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		return err
	}

	var opts []dijkstra.Option
	if c.cfg.MaxCost > 0 {
		opts = append(opts, dijkstra.WithMaxCost(c.cfg.MaxCost))
	}
	if c.cfg.ShowPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := &batch.Runner{
		Workers: c.cfg.Workers,
		Logger:  c.logger,
		Metrics: col,
		Options: opts,
	}
	outcomes, err := runner.Run(ctx, puzzles)
	if err != nil {
		return err
	}

	report(cmd.OutOrStdout(), outcomes, c.cfg.ShowPath)

	if path := c.cfg.Metrics.Textfile; path != "" {
		if err = metrics.WriteTextfile(path, reg); err != nil {
			return err
		}
		c.logger.Info("metrics written", zap.String("path", path))
	}
	return nil
}

func (c *cli) explore(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		inputs = c.cfg.Inputs
	}
	if len(inputs) == 0 {
		return errNoInputs
	}
	puzzles, err := c.load(inputs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()
	for _, p := range puzzles {
		res, err := bfs.BFS(p.State,
			bfs.WithContext(ctx),
			bfs.WithMaxDepth(c.maxDepth),
			bfs.WithMaxStates(c.maxStates),
			bfs.WithStopAtGoal())
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
		c.logger.Debug("exploration finished",
			zap.String("puzzle", p.Name),
			zap.Int("reached", res.Reached()),
			zap.Bool("truncated", res.Truncated))

		switch {
		case res.FewestMoves >= 0:
			fmt.Fprintf(w, "%s: %d moves (%d states)\n", p.Name, res.FewestMoves, res.Reached())
		case res.Truncated:
			fmt.Fprintf(w, "%s: gave up after %d states\n", p.Name, res.Reached())
		default:
			fmt.Fprintf(w, "%s: no solution (%d states)\n", p.Name, res.Reached())
		}
		if c.showLevels {
			for d, n := range res.Levels {
				fmt.Fprintf(w, "  %d: %d\n", d, n)
			}
		}
	}
	return nil
}

// load reads every input and expands it into one or two puzzles.
func (c *cli) load(inputs []string) ([]batch.Puzzle, error) {
	var puzzles []batch.Puzzle
	for _, name := range inputs {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		lines := diagram.Lines(string(b))

		if !c.cfg.Unfold {
			s, err := diagram.ParseLines(lines)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			puzzles = append(puzzles, batch.Puzzle{Name: name, State: s})
		}
		if c.cfg.Unfold || c.cfg.Both {
			s, err := diagram.ParseLines(diagram.Unfold(lines))
			if err != nil {
				return nil, fmt.Errorf("%s (unfolded): %w", name, err)
			}
			puzzles = append(puzzles, batch.Puzzle{Name: name + " (unfolded)", State: s})
		}
	}
	return puzzles, nil
}

func report(w io.Writer, outcomes []batch.Outcome, showPath bool) {
	for _, o := range outcomes {
		if !o.Result.Solved {
			fmt.Fprintf(w, "%s: no solution\n", o.Puzzle.Name)
			continue
		}
		fmt.Fprintf(w, "%s: %d\n", o.Puzzle.Name, o.Result.Cost)
		if showPath {
			for _, m := range o.Result.Path {
				fmt.Fprintf(w, "  %v\n", m)
			}
		}
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
