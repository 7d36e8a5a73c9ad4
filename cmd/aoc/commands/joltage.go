package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

func joltageCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "joltage FILE",
		Short: "Sum the largest joltage of every bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "joltage", args[0], p)
		},
	}
	cmd.Flags().IntVarP(&p.Batteries, "batteries", "n", p.Batteries, "batteries to turn on per bank")
	return cmd
}
