package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trianglepath/internal/config"
	"github.com/katalvlaran/trianglepath/internal/logger"
)

// app carries the streams, raw flag values and resolved config shared by
// all sub-commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	debug      bool
	numeric    string
	objective  string
	input      string
	output     string
	skipBlank  bool
	comment    string

	cfg        config.Config
	restoreLog func()
}

// Execute runs the command line against the process streams and returns
// the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{in: stdin, out: stdout, errOut: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if a.restoreLog != nil {
		a.restoreLog()
	}
	if err == nil {
		return ExitOK
	}

	code, headline := classify(err)
	fmt.Fprintln(stderr, headline)
	fmt.Fprintln(stderr, err)
	return code
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mintrianglepath [file]",
		Short: "Find the minimal top-to-bottom path through a triangle of numbers",
		Long: "Reads a triangle (one row per line, row i holding i values) from file or\n" +
			"standard input and prints the path from apex to base with the smallest total.",
		Args:              maxArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.solve(args, false)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default ./"+config.DefaultFile+" if present)")
	pf.BoolVar(&a.debug, "debug", false, "log diagnostics to stderr")
	pf.StringVar(&a.numeric, "numeric", config.NumericInt, "value type: int|float")
	pf.StringVar(&a.objective, "objective", config.ObjectiveMin, "path objective: min|max")
	pf.StringVar(&a.input, "input", config.FormatText, "input format: text|yaml (yaml also reads JSON)")
	pf.StringVar(&a.output, "output", config.FormatText, "output format: text|json")
	pf.BoolVar(&a.skipBlank, "skip-blank-lines", false, "ignore blank lines in text input")
	pf.StringVar(&a.comment, "comment", "", "ignore text input lines starting with this prefix")

	cmd.AddCommand(newSolveCmd(a), newShowCmd(a), newGenerateCmd(a))
	return cmd
}

// setup resolves configuration (defaults, file, then changed flags) and
// installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	fl := cmd.Flags()
	if fl.Changed("numeric") {
		cfg.Numeric = a.numeric
	}
	if fl.Changed("objective") {
		cfg.Objective = a.objective
	}
	if fl.Changed("input") {
		cfg.Input = a.input
	}
	if fl.Changed("output") {
		cfg.Output = a.output
	}
	if fl.Changed("skip-blank-lines") {
		cfg.SkipBlankLines = a.skipBlank
	}
	if fl.Changed("comment") {
		cfg.Comment = a.comment
	}
	if fl.Changed("debug") {
		cfg.Debug = a.debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.restoreLog = logger.Setup(logger.Config{Out: a.errOut, Debug: cfg.Debug})
	logger.L().Debug("config.resolved",
		"file", a.configPath,
		"numeric", cfg.Numeric,
		"objective", cfg.Objective,
		"input", cfg.Input,
		"output", cfg.Output,
	)

	return nil
}

// maxArgs wraps cobra.MaximumNArgs so violations map to ExitUsage.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}
