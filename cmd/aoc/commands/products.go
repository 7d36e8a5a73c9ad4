package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

// products FILE: sum the invalid IDs of the comma-separated ranges.
func productsCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "products FILE",
		Short: "Sum invalid product IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "products", args[0], p)
		},
	}
	cmd.Flags().BoolVar(&p.Doubled, "doubled", p.Doubled, "only IDs made of one block repeated exactly twice")
	return cmd
}
