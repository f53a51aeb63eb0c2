// Package batch evaluates YAML job files: ordered lists of factorial and
// sequence-aggregate operations, sharing one factorial result cache.
package batch

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kvo/numq/internal/log"
	"github.com/kvo/numq/pkg/cache"
	"github.com/kvo/numq/pkg/mathx"
)

// Op identifies a batch operation.
type Op string

const (
	OpFactorial Op = "factorial"
	OpMax       Op = "max"
	OpMin       Op = "min"
	OpSum       Op = "sum"
)

// Job is a single operation in a job file.
type Job struct {
	Op     Op      `yaml:"op"`
	N      int     `yaml:"n"`
	Values []int64 `yaml:"values"`
}

// File is the top-level structure of a YAML job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Result pairs a job with its outcome. Exactly one of Value and Err is
// meaningful; a failed job does not abort the run.
type Result struct {
	Job   Job
	Value int64
	Err   error
}

// Parse decodes and validates a YAML job file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}

	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("job file contains no jobs")
	}

	for i, job := range f.Jobs {
		switch job.Op {
		case OpFactorial, OpMax, OpMin, OpSum:
		case "":
			return nil, fmt.Errorf("job %d: missing op", i+1)
		default:
			return nil, fmt.Errorf("job %d: unknown op %q", i+1, job.Op)
		}
	}

	return &f, nil
}

// Runner evaluates jobs, consulting an optional factorial result cache.
type Runner struct {
	store  *cache.Store
	logger log.Logger
}

// NewRunner creates a Runner. store may be nil to disable caching.
func NewRunner(store *cache.Store, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{store: store, logger: logger}
}

// Run evaluates jobs in order and returns one result per job.
func (r *Runner) Run(jobs []Job) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, r.run(job))
	}
	return results
}

func (r *Runner) run(job Job) Result {
	res := Result{Job: job}

	switch job.Op {
	case OpFactorial:
		res.Value, res.Err = r.factorial(job.N)
	case OpMax:
		res.Value, res.Err = mathx.Max(job.Values)
	case OpMin:
		res.Value, res.Err = mathx.Min(job.Values)
	case OpSum:
		res.Value = mathx.Sum(job.Values)
	default:
		res.Err = fmt.Errorf("unknown op %q", job.Op)
	}

	return res
}

func (r *Runner) factorial(n int) (int64, error) {
	if r.store != nil {
		if v, ok := r.store.Get(n); ok {
			r.logger.Debug("factorial cache hit", "n", n, "value", v)
			return v, nil
		}
	}

	v, err := mathx.FactorialChecked(n)
	if err != nil {
		return 0, err
	}

	if r.store != nil {
		r.store.Put(n, v)
	}
	return v, nil
}
