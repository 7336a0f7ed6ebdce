package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/propcheck/internal/suite"
	"github.com/mouse-blink/propcheck/pkg/check"
)

var runParallelFlag int
var runSeedFlag int64
var runMinSuccessFlag int
var runMaxDiscardedFlag int
var runMaxSizeFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	defaults := check.DefaultParams()

	cmd := &cobra.Command{
		Use:   "run [properties...]",
		Short: "Check registered properties",
		Long: `Run checks the named properties, or every registered property when
no names are given. Each property is driven until it reaches the
successful-test target, produces a counterexample, or exhausts its
discard budget.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyUIFlags(cmd)

			_, err := suiteRunner.Run(suite.RunArgs{
				Names:   args,
				Params:  paramsFromFlags(runMinSuccessFlag, runMaxDiscardedFlag, runMaxSizeFlag),
				Seed:    runSeedFlag,
				Threads: runParallelFlag,
			})

			return err
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers, one property per worker")
	cmd.Flags().Int64Var(&runSeedFlag, "seed", 0, "base random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&runMinSuccessFlag, "min-success", defaults.MinSuccessfulTests, "successful tests required per property")
	cmd.Flags().IntVar(&runMaxDiscardedFlag, "max-discarded", defaults.MaxDiscardedTests, "discarded tests tolerated per property")
	cmd.Flags().IntVar(&runMaxSizeFlag, "max-size", defaults.MaxSize, "upper bound of the size growth schedule")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
