package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kvo/numq/internal/log"
	"github.com/kvo/numq/pkg/mathx"
)

// The fixed sample inputs exercised by a bare `numq` invocation.
var (
	demoFactorialInput = 5
	demoNumbers        = []int64{3, 7, 2, 9, 1}
)

// RootCmd represents the base command when called without any subcommands.
// Invoked bare, it runs the built-in sample: factorial of 5 and the maximum
// of {3, 7, 2, 9, 1}.
var RootCmd = &cobra.Command{
	Use:   "numq",
	Short: "numq - Tiny integer toolbox",
	Long: `numq computes factorials and aggregates over integer sequences.

Commands:
  factorial   Compute n!
  max         Find the maximum of a sequence
  stats       Min/max/sum/mean of a sequence
  batch       Evaluate a YAML job file
  init        Initialize configuration interactively
  doctor      Run health checks on configuration and cache

Run numq with no arguments to execute the built-in sample.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.Default().SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(cmd.OutOrStdout())
	},
}

// runDemo writes the sample output. The shape of these two lines is a
// compatibility contract; scripts parse them.
func runDemo(w io.Writer) {
	fmt.Fprintf(w, "Factorial of %d: %d\n", demoFactorialInput, mathx.Factorial(demoFactorialInput))

	maxVal, _ := mathx.Max(demoNumbers) // fixed non-empty sample, cannot fail
	fmt.Fprintf(w, "Maximum value: %d\n", maxVal)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	RootCmd.AddCommand(factorialCmd)
	RootCmd.AddCommand(maxCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(batchCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(doctorCmd)
}
