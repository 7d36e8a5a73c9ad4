package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

func ingredientsCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "ingredients FILE",
		Short: "Count fresh ingredients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "ingredients", args[0], p)
		},
	}
	cmd.Flags().BoolVarP(&p.Total, "total", "t", p.Total, "count every ID the fresh ranges cover")
	return cmd
}
