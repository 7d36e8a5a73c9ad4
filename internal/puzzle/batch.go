package puzzle

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrBadJobs indicates a negative concurrency limit.
var ErrBadJobs = errors.New("puzzle: jobs cannot be negative")

// Run is one entry of a batch manifest.
type Run struct {
	Name   string `yaml:"name"`
	Puzzle string `yaml:"puzzle"`
	Input  string `yaml:"input"`
	Params Params `yaml:"params"`
}

// UnmarshalYAML starts Params from DefaultParams when the key is absent.
func (r *Run) UnmarshalYAML(n *yaml.Node) error {
	type plain Run
	v := plain{Params: DefaultParams()}
	if err := n.Decode(&v); err != nil {
		return err
	}
	*r = Run(v)

	return nil
}

// Label names the run in logs: Name when set, Puzzle otherwise.
func (r Run) Label() string {
	if r.Name != "" {
		return r.Name
	}

	return r.Puzzle
}

// Outcome is the result of one Run.
type Outcome struct {
	Name    string
	Puzzle  string
	Answer  int
	Err     error
	Elapsed time.Duration
}

// RunBatch solves every run with at most jobs in flight (GOMAXPROCS when
// jobs is 0). Outcomes are returned in the order of runs.
//
// Per-run failures are stored in Outcome.Err. The returned error is non-nil
// only for ErrBadJobs or when ctx is cancelled; the outcomes gathered so far
// are still returned in that case.
func RunBatch(ctx context.Context, logger *zap.Logger, runs []Run, jobs int) ([]Outcome, error) {
	if jobs < 0 {
		return nil, ErrBadJobs
	}
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]Outcome, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, run := range runs {
		out[i] = Outcome{Name: run.Label(), Puzzle: run.Puzzle}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return err
			}

			start := time.Now()
			answer, err := Solve(gctx, run.Puzzle, run.Input, run.Params)
			out[i].Answer, out[i].Err, out[i].Elapsed = answer, err, time.Since(start)

			fields := []zap.Field{
				zap.String("run", run.Label()),
				zap.String("puzzle", run.Puzzle),
				zap.String("input", run.Input),
				zap.Duration("elapsed", out[i].Elapsed),
			}
			if err != nil {
				logger.Warn("run failed", append(fields, zap.Error(err))...)
				return nil
			}
			logger.Debug("run solved", append(fields, zap.Int("answer", answer))...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, ctx.Err()
}
