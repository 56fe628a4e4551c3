package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/tree"
)

// treeStats summarizes the shape of a tree.
type treeStats struct {
	Nodes  int
	Leaves int
	Depth  int // deepest level; -1 for an empty tree
}

// collectStats folds over the tree once in pre-order.
func collectStats(t tree.Tree) treeStats {
	s := treeStats{Nodes: t.Len(), Depth: -1}
	acc, _ := t.Fold(s, func(acc any, n tree.Node) (any, tree.Signal) {
		cur := acc.(treeStats)
		if n.IsLeaf() {
			cur.Leaves++
		}
		if n.Level > cur.Depth {
			cur.Depth = n.Level
		}
		return cur, tree.SignalContinue
	})
	return acc.(treeStats)
}

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [outline]",
		Short: "Show node, leaf, and depth counts for an outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(argOrStdin(args))
			if err != nil {
				return err
			}

			s := collectStats(t)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("nodes: "), styleNumber.Render(fmt.Sprint(s.Nodes)))
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("leaves:"), styleNumber.Render(fmt.Sprint(s.Leaves)))
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("depth: "), styleNumber.Render(fmt.Sprint(s.Depth)))
			return nil
		},
	}
}
