// Package outline converts between indented outline text and trees.
//
// The format is one node per line, two spaces of indentation per level, with
// an optional "- " or "* " bullet before the label:
//
//	Root
//	  - Branch
//	    - Leaf
//	  - Solo
//
// Blank lines and lines starting with "#" are skipped. A document describes
// exactly one tree, so it has exactly one column-zero line. This is the input
// format of the arbor CLI; the tree package itself has no serialization.
package outline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	arberrors "github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/tree"
)

// indentWidth is the number of spaces per outline level.
const indentWidth = 2

// Parse reads outline text from r and builds a tree using f for node
// construction. An input with no node lines yields the empty tree.
// Malformed input (tabs, odd indentation, a level skipped, a second root)
// returns an error with code [arberrors.ErrCodeInvalidOutline].
func Parse(r io.Reader, f tree.Factory) (tree.Tree, error) {
	t := tree.New()
	// stack[d] is the id of the most recent node seen at depth d.
	var stack []tree.NodeID

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.ContainsRune(raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))], '\t') {
			return tree.Tree{}, arberrors.New(arberrors.ErrCodeInvalidOutline,
				"line %d: tabs are not allowed, indent with %d spaces per level", line, indentWidth)
		}

		indent := len(raw) - len(strings.TrimLeft(raw, " "))
		if indent%indentWidth != 0 {
			return tree.Tree{}, arberrors.New(arberrors.ErrCodeInvalidOutline,
				"line %d: indent of %d is not a multiple of %d", line, indent, indentWidth)
		}
		depth := indent / indentWidth
		label := trimBullet(trimmed)
		if label == "" {
			return tree.Tree{}, arberrors.New(arberrors.ErrCodeInvalidOutline,
				"line %d: empty label", line)
		}

		switch {
		case depth == 0:
			if !t.IsEmpty() {
				return tree.Tree{}, arberrors.New(arberrors.ErrCodeInvalidOutline,
					"line %d: second root %q, an outline describes a single tree", line, label)
			}
			n := f.NamedNode(label)
			t = tree.NewWithRoot(n)
			stack = []tree.NodeID{n.ID}

		case t.IsEmpty():
			return tree.Tree{}, arberrors.New(arberrors.ErrCodeInvalidOutline,
				"line %d: first node must start at column zero", line)

		case depth > len(stack):
			return tree.Tree{}, arberrors.New(arberrors.ErrCodeInvalidOutline,
				"line %d: indent jumps from level %d to %d", line, len(stack)-1, depth)

		default:
			n := f.NamedNode(label)
			nt, err := t.AddChild(n, stack[depth-1])
			if err != nil {
				return tree.Tree{}, arberrors.Wrap(arberrors.ErrCodeInternal, err,
					"line %d: attach %q", line, label)
			}
			t = nt
			stack = append(stack[:depth], n.ID)
		}
	}
	if err := sc.Err(); err != nil {
		return tree.Tree{}, arberrors.Wrap(arberrors.ErrCodeInvalidInput, err, "read outline")
	}
	return t, nil
}

// ParseBytes is a convenience wrapper around [Parse] for in-memory input.
func ParseBytes(b []byte, f tree.Factory) (tree.Tree, error) {
	return Parse(bytes.NewReader(b), f)
}

// Write renders t back to outline text: two spaces per level and a "- "
// bullet on every line except the root. Write and [Parse] round-trip the
// structure and labels (node ids and content are not part of the format).
func Write(w io.Writer, t tree.Tree) error {
	walker := t.Walk()
	for {
		n, ok := walker.Next()
		if !ok {
			return nil
		}
		bullet := "- "
		if n.IsRoot() {
			bullet = ""
		}
		indent := strings.Repeat(" ", n.Level*indentWidth)
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, bullet, n.Name); err != nil {
			return err
		}
	}
}

func trimBullet(s string) string {
	for _, b := range []string{"- ", "* "} {
		if rest, ok := strings.CutPrefix(s, b); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}
