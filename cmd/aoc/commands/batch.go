package commands

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/internal/puzzle"
)

// batch MANIFEST: solve every run listed under batch.runs. Relative inputs
// are resolved against the manifest's directory. Failed runs are reported in
// the table and make the command exit non-zero.
func batchCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Solve every run of a YAML manifest in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err = m.Validate(); err != nil {
				return err
			}
			if len(m.Batch.Runs) == 0 {
				return fmt.Errorf("batch: %s lists no runs", args[0])
			}
			base := filepath.Dir(args[0])
			for i, run := range m.Batch.Runs {
				if !filepath.IsAbs(run.Input) {
					m.Batch.Runs[i].Input = filepath.Join(base, run.Input)
				}
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = m.Batch.Jobs
			}

			logger.Info("batch started", zap.String("manifest", args[0]),
				zap.Int("runs", len(m.Batch.Runs)), zap.Int("jobs", jobs))
			out, err := puzzle.RunBatch(cmd.Context(), logger, m.Batch.Runs, jobs)

			failed := 0
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, o := range out {
				if o.Err != nil {
					failed++
					fmt.Fprintf(w, "%s\t%s\terror: %v\n", o.Name, o.Puzzle, o.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", o.Name, o.Puzzle, o.Answer)
			}
			if ferr := w.Flush(); ferr != nil {
				return ferr
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d runs failed", failed, len(out))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "runs solved in parallel (default: manifest, then GOMAXPROCS)")
	return cmd
}
