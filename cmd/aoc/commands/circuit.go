package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/puzzle"
)

// circuit FILE: with -k > 0 multiply the k largest circuits after -c
// connections; with -k 0 multiply the X coordinates of the last merge.
func circuitCmd() *cobra.Command {
	p := puzzle.DefaultParams()
	cmd := &cobra.Command{
		Use:   "circuit FILE",
		Short: "Wire junction boxes into circuits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, "circuit", args[0], p)
		},
	}
	cmd.Flags().IntVarP(&p.Connections, "connections", "c", p.Connections, "closest pairs to wire (0 wires until one circuit)")
	cmd.Flags().IntVarP(&p.Top, "top", "k", p.Top, "largest circuits to multiply (0 answers the last merge)")
	cmd.Flags().BoolVar(&p.Descending, "descending", p.Descending, "wire the farthest pairs first")
	return cmd
}
