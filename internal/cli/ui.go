package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/arbor/pkg/tree"
)

// Color palette.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - internal nodes
	colorGreen = lipgloss.Color("35")  // Green - success / counts
	colorWhite = lipgloss.Color("255") // Bright white - labels
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleBranch for internal-node markers.
	styleBranch = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleLeaf for leaf-node markers.
	styleLeaf = lipgloss.NewStyle().Foreground(colorGray)

	// styleLabel for node names.
	styleLabel = lipgloss.NewStyle().Foreground(colorWhite)

	// styleNumber for counts in stats output.
	styleNumber = lipgloss.NewStyle().Foreground(colorGreen)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// treeLines formats a tree one node per line in pre-order, with indent
// spaces per level and a styled "*"/"-" marker. With color disabled it
// matches the library's plain Print output.
func treeLines(t tree.Tree, indent int, color bool) []string {
	var out []string
	w := t.Walk()
	for {
		n, ok := w.Next()
		if !ok {
			return out
		}
		marker := "-"
		if !n.IsLeaf() {
			marker = "*"
		}
		label := n.Name
		if color {
			if marker == "*" {
				marker = styleBranch.Render(marker)
			} else {
				marker = styleLeaf.Render(marker)
			}
			label = styleLabel.Render(label)
		}
		pad := strings.Repeat(" ", n.Level*indent)
		out = append(out, fmt.Sprintf("%s%s %s", pad, marker, label))
	}
}
