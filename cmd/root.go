// Package cmd provides the root command and CLI setup for propcheck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/propcheck/internal/controller"
	"github.com/mouse-blink/propcheck/internal/suite"
	"github.com/mouse-blink/propcheck/pkg/check"
)

var ui controller.UI
var suiteRunner suite.Runner

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	suiteRunner = suite.NewRunner(ui)
}

var listFlag bool
var parallelFlag int
var seedFlag int64
var simpleFlag bool
var minSuccessFlag int
var maxDiscardedFlag int
var maxSizeFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	defaults := check.DefaultParams()

	cmd := &cobra.Command{
		Use:   "propcheck [properties...]",
		Short: "Property-based testing demo runner",
		Long: `Propcheck checks randomized properties: it generates structured
random inputs under a growing size budget, evaluates each property
against them, and reports passed / failed / exhausted verdicts with
the counterexample arguments that falsified a property.

Without arguments it checks every registered property; pass property
names to check a selection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyUIFlags(cmd)

			if listFlag {
				return suiteRunner.List()
			}

			_, err := suiteRunner.Run(suite.RunArgs{
				Names:   args,
				Params:  paramsFromFlags(minSuccessFlag, maxDiscardedFlag, maxSizeFlag),
				Seed:    seedFlag,
				Threads: parallelFlag,
			})

			return err
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list registered properties instead of checking them")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers, one property per worker")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "base random seed (0 picks one from the clock)")
	cmd.PersistentFlags().BoolVar(&simpleFlag, "simple", false, "force plain text output even on a terminal")
	cmd.Flags().IntVar(&minSuccessFlag, "min-success", defaults.MinSuccessfulTests, "successful tests required per property")
	cmd.Flags().IntVar(&maxDiscardedFlag, "max-discarded", defaults.MaxDiscardedTests, "discarded tests tolerated per property")
	cmd.Flags().IntVar(&maxSizeFlag, "max-size", defaults.MaxSize, "upper bound of the size growth schedule")

	return cmd
}

// applyUIFlags rebuilds the UI when --simple overrides the TTY choice
// made at startup. A UI that is already plain is left alone.
func applyUIFlags(cmd *cobra.Command) {
	if !simpleFlag {
		return
	}

	if _, isTUI := ui.(*controller.TUI); !isTUI {
		return
	}

	ui = controller.NewSimpleUI(cmd)
	suiteRunner = suite.NewRunner(ui)
}

// paramsFromFlags assembles run parameters; validation happens in
// check.NewRunner.
func paramsFromFlags(minSuccess, maxDiscarded, maxSize int) check.Params {
	return check.Params{
		MinSuccessfulTests: minSuccess,
		MaxDiscardedTests:  maxDiscarded,
		MaxSize:            maxSize,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
