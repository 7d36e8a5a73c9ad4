package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

// forklift FILE: count the rolls removed until none is reachable.
func forkliftCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "forklift FILE",
		Short: "Count removable paper rolls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "forklift", args[0], p)
		},
	}
	cmd.Flags().BoolVar(&p.Once, "once", p.Once, "only count the rolls reachable right now")
	return cmd
}
