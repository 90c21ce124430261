package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/obstacles"
	"github.com/katalvlaran/gridpath/report"
	"github.com/katalvlaran/gridpath/scenario"
)

// errSearchFailed is returned by commands whose search did not reach the goal.
// The report has already been printed, so main only sets the exit status.
var errSearchFailed = errors.New("search failed")

// cliOptions holds flags shared by all subcommands.
type cliOptions struct {
	verbose       bool
	render        bool
	color         string
	maxIterations int
	reachability  bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Plan a vehicle route across a warehouse grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every expansion at debug level")
	pf.BoolVar(&opts.render, "render", false, "draw the grid with the route overlaid")
	pf.StringVar(&opts.color, "color", "auto", "color the rendering: auto, always or never")
	pf.IntVar(&opts.maxIterations, "max-iterations", 0, "expansion budget (0 = rows×cols/2)")
	pf.BoolVar(&opts.reachability, "reachability-check", false, "fail fast when start and goal are in separate regions")

	rootCmd.AddCommand(newSolveCmd(opts), newRandomCmd(opts))

	return rootCmd
}

func newSolveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [scenario.yaml]",
		Short: "Solve a scenario file, or the built-in warehouse layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Default()
			if len(args) == 1 {
				var err error
				if sc, err = scenario.Load(args[0]); err != nil {
					return err
				}
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, sc)
		},
	}
}

func newRandomCmd(opts *cliOptions) *cobra.Command {
	var (
		rows, cols, count int
		seed              int64
		start, goal       string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Solve a randomly generated layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseCell(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			g := gridgraph.C(rows-1, cols-1)
			if cmd.Flags().Changed("goal") {
				if g, err = parseCell(goal); err != nil {
					return fmt.Errorf("--goal: %w", err)
				}
			}

			values, err := obstacles.NewGenerator(seed).Generate(rows, cols, count, s, g)
			if err != nil {
				return err
			}
			sc := scenario.Scenario{
				Name:  fmt.Sprintf("random-%d", seed),
				Grid:  values,
				Start: []int{s.Row, s.Col},
				Goal:  []int{g.Row, g.Col},
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, sc)
		},
	}

	f := cmd.Flags()
	f.IntVar(&rows, "rows", 10, "grid rows")
	f.IntVar(&cols, "cols", 10, "grid columns")
	f.IntVar(&count, "obstacles", 20, "number of distinct obstacles")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVar(&start, "start", "0,0", "start cell as row,col")
	f.StringVar(&goal, "goal", "", "goal cell as row,col (default: bottom-right corner)")

	return cmd
}

// run solves sc and writes the report.
func run(stdout, stderr io.Writer, opts *cliOptions, sc scenario.Scenario) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.maxIterations < 0 {
		return fmt.Errorf("--max-iterations must be non-negative, got %d", opts.maxIterations)
	}
	extra := []astar.Option{astar.WithLogger(logger)}
	if opts.maxIterations > 0 {
		extra = append(extra, astar.WithMaxIterations(opts.maxIterations))
	}
	if opts.reachability {
		extra = append(extra, astar.WithReachabilityCheck())
	}

	logger.Info("solving", "scenario", sc.Name, "start", fmt.Sprint(sc.Start), "goal", fmt.Sprint(sc.Goal))
	g, res, err := sc.Solve(extra...)
	if err != nil {
		return err
	}
	logger.Info("grid", "rows", g.Rows(), "cols", g.Cols(), "obstacles", g.Obstacles())

	start, goal := sc.StartCell(), sc.GoalCell()
	if opts.render {
		var ropts []report.RenderOption
		if useColor(opts.color, stdout) {
			ropts = append(ropts, report.WithColor())
		}
		if err := report.Render(stdout, g, res.Path, start, goal, ropts...); err != nil {
			return err
		}
	}
	if err := report.Write(stdout, report.Build(g, res, start, goal)); err != nil {
		return err
	}
	if !res.Found() {
		return errSearchFailed
	}

	return nil
}

// useColor resolves the --color flag; "auto" colors only terminals.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// parseCell parses "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", scenario.ErrBadCell, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", scenario.ErrBadCell, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", scenario.ErrBadCell, s)
	}

	return gridgraph.C(r, c), nil
}
