package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

// dial FILE: count the rotations that leave the dial at 0.
func dialCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "dial FILE",
		Short: "Count the times the dial points at 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "dial", args[0], p)
		},
	}
	cmd.Flags().IntVarP(&p.Start, "start", "s", p.Start, "starting dial position")
	cmd.Flags().IntVarP(&p.MaxValue, "max", "m", p.MaxValue, "largest number on the dial")
	cmd.Flags().BoolVarP(&p.AnyClick, "any-click", "a", p.AnyClick, "count every click that passes 0")
	return cmd
}
