package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvo/numq/internal/log"
	"github.com/kvo/numq/pkg/batch"
	"github.com/kvo/numq/pkg/cache"
)

type batchResult struct {
	Op     batch.Op `json:"op"`
	N      int      `json:"n,omitempty"`
	Values []int64  `json:"values,omitempty"`
	Value  *int64   `json:"value,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate a YAML job file",
	Long: `Evaluates a YAML file listing factorial, max, min, and sum jobs in order.
Factorial results are cached across runs when the cache is enabled. A failed
job is reported in the results without aborting the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading job file: %w", err)
		}

		f, err := batch.Parse(data)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var store *cache.Store
		if cfg.CacheEnabled {
			store = openStore(cfg)
		}

		log.Default().Debug("running batch", "file", args[0], "jobs", len(f.Jobs))
		results := batch.NewRunner(store, log.Default()).Run(f.Jobs)

		if store != nil {
			saveStore(store, cfg)
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput || cfg.JSON {
			if err := writeBatchJSON(cmd, results); err != nil {
				return err
			}
		} else {
			writeBatchText(cmd, results)
		}

		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d jobs failed", failed, len(results))
		}
		return nil
	},
}

func writeBatchJSON(cmd *cobra.Command, results []batch.Result) error {
	out := make([]batchResult, 0, len(results))
	for _, res := range results {
		r := batchResult{
			Op:     res.Job.Op,
			N:      res.Job.N,
			Values: res.Job.Values,
		}
		if res.Err != nil {
			r.Error = res.Err.Error()
		} else {
			v := res.Value
			r.Value = &v
		}
		out = append(out, r)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeBatchText(cmd *cobra.Command, results []batch.Result) {
	w := cmd.OutOrStdout()
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", jobLabel(res.Job), res.Err)
			continue
		}
		fmt.Fprintf(w, "%s = %d\n", jobLabel(res.Job), res.Value)
	}
}

func jobLabel(job batch.Job) string {
	if job.Op == batch.OpFactorial {
		return fmt.Sprintf("factorial(%d)", job.N)
	}

	parts := make([]string, 0, len(job.Values))
	for _, v := range job.Values {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	return fmt.Sprintf("%s(%s)", job.Op, strings.Join(parts, ", "))
}

func init() {
	batchCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}
