package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kvo/numq/internal/log"
	"github.com/kvo/numq/pkg/mathx"
)

// factorialOutput is the --json shape. Factorial is a decimal string so that
// --big results survive JSON number precision.
type factorialOutput struct {
	N         int    `json:"n"`
	Factorial string `json:"factorial"`
	Cached    bool   `json:"cached,omitempty"`
}

// factorialCmd represents the factorial command
var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Compute n!",
	Long: `Computes the factorial of n. Any n at or below 1, negatives included,
yields 1. Results past 20! exceed int64; pass --big for arbitrary precision.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parsing n: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		jsonOutput = jsonOutput || cfg.JSON
		useBig, _ := cmd.Flags().GetBool("big")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		if useBig {
			return writeFactorial(cmd, factorialOutput{
				N:         n,
				Factorial: mathx.FactorialBig(n).String(),
			}, jsonOutput)
		}

		out := factorialOutput{N: n}

		if cfg.CacheEnabled && !noCache {
			store := openStore(cfg)
			if v, ok := store.Get(n); ok {
				log.Default().Debug("factorial cache hit", "n", n, "value", v)
				out.Factorial = strconv.FormatInt(v, 10)
				out.Cached = true
				saveStore(store, cfg) // persists the refreshed access order
				return writeFactorial(cmd, out, jsonOutput)
			}

			v, err := mathx.FactorialChecked(n)
			if err != nil {
				return factorialError(n, err)
			}
			store.Put(n, v)
			saveStore(store, cfg)
			out.Factorial = strconv.FormatInt(v, 10)
			return writeFactorial(cmd, out, jsonOutput)
		}

		v, err := mathx.FactorialChecked(n)
		if err != nil {
			return factorialError(n, err)
		}
		out.Factorial = strconv.FormatInt(v, 10)
		return writeFactorial(cmd, out, jsonOutput)
	},
}

func factorialError(n int, err error) error {
	if errors.Is(err, mathx.ErrOverflow) {
		return fmt.Errorf("factorial of %d: %w (use --big for arbitrary precision)", n, err)
	}
	return err
}

func writeFactorial(cmd *cobra.Command, out factorialOutput, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Factorial of %d: %s\n", out.N, out.Factorial)
	return nil
}

func init() {
	factorialCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	factorialCmd.Flags().Bool("big", false, "Use arbitrary precision")
	factorialCmd.Flags().Bool("no-cache", false, "Bypass the result cache")
}
