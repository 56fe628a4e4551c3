package tree

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDanglingReference is returned by [Tree.Validate] when a parent or
	// child id does not resolve to a node. This indicates tree corruption.
	ErrDanglingReference = errors.New("dangling node reference")

	// ErrLinkMismatch is returned by [Tree.Validate] when a children list
	// does not exactly mirror the Parent fields of its members, or holds a
	// duplicate id.
	ErrLinkMismatch = errors.New("parent/child links out of sync")

	// ErrBadLevel is returned by [Tree.Validate] when a node's level is not
	// its parent's level plus one (or not zero for the root).
	ErrBadLevel = errors.New("inconsistent node level")

	// ErrUnreachableNode is returned by [Tree.Validate] when the map holds a
	// node that cannot be reached from the root through children, i.e. the
	// structure is a forest or contains a cycle.
	ErrUnreachableNode = errors.New("node unreachable from root")
)

// Validate checks the tree's structural invariants and returns nil if they
// all hold: every reference resolves, children lists are duplicate-free and
// mirror the Parent fields, levels increase by one per generation from a
// level-zero root, and every node is reachable from the root. Operations
// preserve these invariants; Validate exists for tests and for callers that
// construct trees from untrusted ingredients.
func (t Tree) Validate() error {
	if t.IsEmpty() {
		if t.root != NoParent {
			return fmt.Errorf("root %q with no nodes: %w", t.root, ErrDanglingReference)
		}
		return nil
	}

	root, ok := t.nodes[t.root]
	if !ok {
		return fmt.Errorf("root %q: %w", t.root, ErrDanglingReference)
	}
	if root.Parent != NoParent {
		return fmt.Errorf("root %q has parent %q: %w", t.root, root.Parent, ErrLinkMismatch)
	}
	if root.Level != 0 {
		return fmt.Errorf("root %q has level %d: %w", t.root, root.Level, ErrBadLevel)
	}

	for id, n := range t.nodes {
		if id != t.root {
			if n.Parent == NoParent {
				return fmt.Errorf("second root %q: %w", id, ErrUnreachableNode)
			}
			p, ok := t.nodes[n.Parent]
			if !ok {
				return fmt.Errorf("node %q parent %q: %w", id, n.Parent, ErrDanglingReference)
			}
			if !slices.Contains(p.Children, id) {
				return fmt.Errorf("node %q missing from children of %q: %w", id, n.Parent, ErrLinkMismatch)
			}
			if n.Level != p.Level+1 {
				return fmt.Errorf("node %q level %d under level %d: %w", id, n.Level, p.Level, ErrBadLevel)
			}
		}
		seen := make(map[NodeID]struct{}, len(n.Children))
		for _, c := range n.Children {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("node %q lists child %q twice: %w", id, c, ErrLinkMismatch)
			}
			seen[c] = struct{}{}
			child, ok := t.nodes[c]
			if !ok {
				return fmt.Errorf("node %q child %q: %w", id, c, ErrDanglingReference)
			}
			if child.Parent != id {
				return fmt.Errorf("child %q of %q claims parent %q: %w", c, id, child.Parent, ErrLinkMismatch)
			}
		}
	}

	reached := 0
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		stack = append(stack, t.nodes[cur].Children...)
	}
	if reached != len(t.nodes) {
		return fmt.Errorf("%d of %d nodes reachable: %w", reached, len(t.nodes), ErrUnreachableNode)
	}
	return nil
}
