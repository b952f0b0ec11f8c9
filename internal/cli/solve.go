package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trianglepath/internal/config"
	"github.com/katalvlaran/trianglepath/internal/logger"
	"github.com/katalvlaran/trianglepath/parse"
	"github.com/katalvlaran/trianglepath/render"
	"github.com/katalvlaran/trianglepath/solver"
	"github.com/katalvlaran/trianglepath/triangle"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the optimal path and its sum",
		Args:  maxArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.solve(args, false)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Draw the triangle with the optimal path highlighted",
		Args:  maxArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.solve(args, true)
		},
	}
}

// solve reads the triangle named by args (stdin when absent or "-"),
// finds the optimal path and renders it. With show set the triangle is
// drawn first.
func (a *app) solve(args []string, show bool) error {
	r, closeInput, err := a.open(args)
	if err != nil {
		return err
	}
	defer closeInput()

	switch a.cfg.Numeric {
	case config.NumericFloat:
		return solveAs(a, r, parse.Float64, show)
	default:
		return solveAs(a, r, parse.Int64, show)
	}
}

func (a *app) open(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		logger.L().Debug("input.opened", "source", "stdin")
		return a.in, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errInput, err)
	}
	logger.L().Debug("input.opened", "source", args[0])

	return f, func() { _ = f.Close() }, nil
}

func solveAs[T triangle.Number](a *app, r io.Reader, conv parse.Converter[T], show bool) error {
	log := logger.L()

	start := time.Now()
	t, err := readTriangle(a.cfg, r, conv)
	if err != nil {
		return err
	}
	log.Debug("triangle.read", "rows", t.Len(), "elapsed", time.Since(start))

	obj := objective(a.cfg)
	start = time.Now()
	p, err := solver.FindPath(t, solver.WithObjective(obj))
	if err != nil {
		return err
	}
	log.Debug("triangle.solved", "objective", obj.String(), "sum", triangle.Format(p.Sum), "elapsed", time.Since(start))

	if show {
		// stdout carries a single JSON document in json mode
		drawing := a.out
		if a.cfg.Output == config.FormatJSON {
			drawing = a.errOut
		}
		if err = render.Highlight(drawing, t, p); err != nil {
			return fmt.Errorf("%w: %w", errOutput, err)
		}
	}
	if a.cfg.Output == config.FormatJSON {
		err = render.JSON(a.out, render.NewReport(p, obj))
	} else {
		err = render.Summary(a.out, p, obj)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errOutput, err)
	}

	return nil
}

func readTriangle[T triangle.Number](cfg config.Config, r io.Reader, conv parse.Converter[T]) (*triangle.Triangle[T], error) {
	if cfg.Input == config.FormatYAML {
		return parse.YAML[T](r)
	}
	var opts []parse.Option
	if cfg.SkipBlankLines {
		opts = append(opts, parse.WithSkipBlankLines())
	}
	if cfg.Comment != "" {
		opts = append(opts, parse.WithComment(cfg.Comment))
	}

	return parse.Text(r, conv, opts...)
}

func objective(cfg config.Config) solver.Objective {
	if cfg.Objective == config.ObjectiveMax {
		return solver.Maximize
	}
	return solver.Minimize
}
