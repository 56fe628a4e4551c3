// Package render draws trees as Graphviz diagrams.
//
// [ToDOT] converts a tree to DOT text; [RenderSVG] and [RenderPNG] rasterize
// DOT through the embedded Graphviz engine (goccy/go-graphviz runs the C
// layout engine via WebAssembly, so no system Graphviz install is needed).
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/arbor/pkg/tree"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes the node's level and content in labels.
	// When false, only the name is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format. Nodes and edges are emitted
// in pre-order, so output is deterministic for a given tree. Leaf nodes are
// drawn with a grey fill to distinguish them from internal nodes.
func ToDOT(t tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := t.ToList()
	for _, n := range nodes {
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID, c)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n tree.Node, detailed bool) string {
	name := n.Name
	if name == "" {
		name = string(n.ID)
	}
	if !detailed {
		return name
	}
	parts := []string{fmt.Sprintf("level: %d", n.Level)}
	if n.HasContent() {
		parts = append(parts, fmt.Sprintf("content: %v", n.Content))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n tree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsLeaf() {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
