package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

func tilesCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "tiles FILE",
		Short: "Find the largest red-tile rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "tiles", args[0], p)
		},
	}
	cmd.Flags().BoolVar(&p.Contained, "contained", p.Contained, "only rectangles inside the tile outline")
	return cmd
}
