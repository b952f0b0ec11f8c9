package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trianglepath/builder"
	"github.com/katalvlaran/trianglepath/internal/logger"
)

const (
	defaultGenRows = 10
	defaultGenMin  = 0
	defaultGenMax  = 99
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rows   int
		lo, hi int64
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random triangle in text format",
		Args:  maxArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := builder.Random(rows, lo, hi, builder.WithSeed(seed))
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			logger.L().Debug("triangle.generated", "rows", rows, "min", lo, "max", hi, "seed", seed)

			if _, err = io.WriteString(a.out, t.String()+"\n"); err != nil {
				return fmt.Errorf("%w: %w", errOutput, err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&rows, "rows", defaultGenRows, "number of rows")
	f.Int64Var(&lo, "min", defaultGenMin, "smallest value")
	f.Int64Var(&hi, "max", defaultGenMax, "largest value")
	f.Int64Var(&seed, "seed", builder.DefaultSeed, "random seed")

	return cmd
}
