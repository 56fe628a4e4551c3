package tree

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LabelFunc formats a node for printing. The default label is the node's
// name.
type LabelFunc func(Node) string

// Print writes one line per node to w in pre-order: two spaces of
// indentation per level, a "*" marker for internal nodes and "-" for
// leaves, then the label. A nil label prints the node's name.
func (t Tree) Print(w io.Writer, label LabelFunc) error {
	if label == nil {
		label = func(n Node) string { return n.Name }
	}
	walker := t.Walk()
	for {
		n, ok := walker.Next()
		if !ok {
			return nil
		}
		marker := "-"
		if !n.IsLeaf() {
			marker = "*"
		}
		indent := strings.Repeat("  ", n.Level)
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, marker, label(n)); err != nil {
			return err
		}
	}
}

// PrintTree writes the tree to standard output with the default label.
func PrintTree(t Tree) {
	_ = t.Print(os.Stdout, nil)
}
