package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

func homeworkCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "homework FILE",
		Short: "Total a column-wise worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "homework", args[0], p)
		},
	}
	cmd.Flags().BoolVarP(&p.Transposed, "transpose", "t", p.Transposed, "read numbers down the character columns")
	return cmd
}
