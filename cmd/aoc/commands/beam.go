package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

func beamCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "beam FILE",
		Short: "Count beam splits or timelines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "beam", args[0], p)
		},
	}
	cmd.Flags().BoolVarP(&p.Timelines, "timelines", "t", p.Timelines, "count timelines instead of splits")
	return cmd
}
