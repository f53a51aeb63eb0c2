package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvo/numq/pkg/mathx"
)

type maxOutput struct {
	Max   int64 `json:"max"`
	Index int   `json:"index"`
	Count int   `json:"count"`
}

// maxCmd represents the max command
var maxCmd = &cobra.Command{
	Use:   "max [ints...]",
	Short: "Find the maximum of a sequence",
	Long: `Finds the largest value among the integer arguments, or among
whitespace-separated integers read from stdin when no arguments are given.
An empty sequence is an error.`,
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
			return fmt.Errorf("finding maximum: %w", err)
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		jsonOutput = jsonOutput || cfg.JSON
		withIndex, _ := cmd.Flags().GetBool("index")

		idx := 0
		if withIndex || jsonOutput {
			idx, _ = mathx.MaxIndex(nums) // same non-empty input as Max
		}

		if jsonOutput {
			data, err := json.MarshalIndent(maxOutput{
				Max:   maxVal,
				Index: idx,
				Count: len(nums),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Maximum value: %d\n", maxVal)
		if withIndex {
			fmt.Fprintf(cmd.OutOrStdout(), "Index: %d\n", idx)
		}
		return nil
	},
}

func init() {
	maxCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	maxCmd.Flags().Bool("index", false, "Also report the position of the first maximum")
}
