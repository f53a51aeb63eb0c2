package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvo/numq/pkg/mathx"
)

type statsOutput struct {
	Count int     `json:"count"`
	Min   int64   `json:"min"`
	Max   int64   `json:"max"`
	Sum   int64   `json:"sum"`
	Mean  float64 `json:"mean"`
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [ints...]",
	Short: "Min/max/sum/mean of a sequence",
	Long: `Computes summary aggregates over the integer arguments, or over
whitespace-separated integers read from stdin when no arguments are given.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := readInts(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		maxVal, err := mathx.Max(nums)
		if err != nil {
			return fmt.Errorf("computing stats: %w", err)
		}
		minVal, _ := mathx.Min(nums)
		mean, _ := mathx.Mean(nums) // same non-empty input as Max

		out := statsOutput{
			Count: len(nums),
			Min:   minVal,
			Max:   maxVal,
			Sum:   mathx.Sum(nums),
			Mean:  mean,
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput || cfg.JSON {
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Count: %d\n", out.Count)
		fmt.Fprintf(w, "Min:   %d\n", out.Min)
		fmt.Fprintf(w, "Max:   %d\n", out.Max)
		fmt.Fprintf(w, "Sum:   %d\n", out.Sum)
		fmt.Fprintf(w, "Mean:  %.2f\n", out.Mean)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}
