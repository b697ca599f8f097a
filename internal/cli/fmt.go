package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/reroot/internal/engine"
	"github.com/daryltucker/reroot/internal/newick"
)

func newFmtCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <input>",
		Short: "Check a Newick file and print it in canonical form",
		Long: `Parses the input and writes it back to stdout with comments and
insignificant whitespace removed and labels quoted only where needed.
A parse error is reported with its byte offset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := engine.ReadTrees(args[0], opts.all)
			if err != nil {
				return err
			}
			w := newick.NewWriter(cmd.OutOrStdout())
			for _, tree := range trees {
				if err := w.WriteTree(tree); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
