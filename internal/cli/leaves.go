/*
PURPOSE:
  Defines the 'leaves' subcommand.
  Lists leaf labels so a user can pick a valid outgroup.

REQUIREMENTS:
  User-specified:
  - Outgroup must match a label in the tree.

  Implementation-discovered:
  - Useful validation step before rerooting a large tree.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.ReadTrees()

ERROR HANDLING:
  - Returns parse and read errors unchanged.

IMPLEMENTATION RULES:
  - Simple output to stdout, one label per line.

USAGE:
  reroot leaves tree.nwk
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/reroot/internal/engine"
)

func newLeavesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "leaves <input>",
		Short: "List the leaf labels of a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := engine.ReadTrees(args[0], opts.all)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, tree := range trees {
				if len(trees) > 1 {
					fmt.Fprintf(out, "# tree %d\n", i+1)
				}
				for _, label := range tree.LeafLabels() {
					fmt.Fprintln(out, label)
				}
			}
			return nil
		},
	}
}
