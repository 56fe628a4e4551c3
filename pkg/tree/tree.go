package tree

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrNodeNotFound is returned by operations and lookups when the
	// referenced id has no node in the tree.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEmptyTree is returned by [Tree.AddChild] when a child is added to
	// the default (root) position of an empty tree, which has no root to
	// attach to.
	ErrEmptyTree = errors.New("tree is empty")

	// ErrMixedParents is returned by [Tree.MoveNodes] when the moved ids do
	// not all share a single current parent. Moves operate on one sibling
	// group at a time.
	ErrMixedParents = errors.New("moved nodes must share one parent")

	// ErrWouldCycle is returned by [Tree.AddChild] and [Tree.MoveNodes] when
	// the destination parent lies inside the subtree being relocated, which
	// would detach the subtree into a cycle.
	ErrWouldCycle = errors.New("destination is inside the moved subtree")

	// ErrIDCollision is returned by [Tree.Merge] when the two trees share at
	// least one node id. Merged trees must have disjoint id sets.
	ErrIDCollision = errors.New("node id exists in both trees")
)

// Tree is an N-ary tree that owns all of its nodes through an id-indexed
// map. The zero value is an empty tree; [New] and [NewWithRoot] are the
// usual constructors.
//
// Tree is a value type with copy-on-write semantics: structural operations
// return a new Tree and never mutate the receiver, so any number of
// goroutines may read a single Tree value concurrently.
type Tree struct {
	root  NodeID
	nodes map[NodeID]Node
}

// New returns an empty tree.
func New() Tree { return Tree{} }

// NewWithRoot returns a tree whose sole node is n. The node's Parent and
// Level are forced to NoParent and 0. Any child ids carried by n are
// dropped: they would reference nodes outside the tree's map. Use
// [Tree.Merge] to graft a pre-built subtree.
func NewWithRoot(n Node) Tree {
	n.Parent = NoParent
	n.Level = 0
	n.Children = nil
	return Tree{root: n.ID, nodes: map[NodeID]Node{n.ID: n}}
}

// clone returns a copy of the tree whose map can be modified freely.
// Children slices are still shared with the receiver and must be cloned
// before any in-place change.
func (t Tree) clone() Tree {
	nt := Tree{root: t.root, nodes: maps.Clone(t.nodes)}
	if nt.nodes == nil {
		nt.nodes = make(map[NodeID]Node)
	}
	return nt
}

// mustNode resolves id or panics. Reserved for paths where the id comes from
// the tree's own indexes, so a miss means the map invariant is broken.
func (t Tree) mustNode(id NodeID) Node {
	n, ok := t.nodes[id]
	if !ok {
		panic(fmt.Sprintf("tree: dangling reference to node %q", id))
	}
	return n
}

// relevel rewrites Level for every descendant of id, deriving each child's
// level from its parent's. The node's own level must already be correct.
// Called after re-parenting so depths stay consistent through the whole
// moved subtree, not just its top node.
func (t Tree) relevel(id NodeID) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.mustNode(cur)
		for _, c := range n.Children {
			child := t.mustNode(c)
			child.Level = n.Level + 1
			t.nodes[c] = child
			stack = append(stack, c)
		}
	}
}

// inSubtree reports whether target is id itself or one of its descendants.
func (t Tree) inSubtree(id, target NodeID) bool {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		stack = append(stack, t.mustNode(cur).Children...)
	}
	return false
}

// withoutChild returns a copy of ids with id removed.
func withoutChild(ids []NodeID, id NodeID) []NodeID {
	out := make([]NodeID, 0, len(ids))
	for _, c := range ids {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}

// withChild returns a copy of ids with id appended.
func withChild(ids []NodeID, id NodeID) []NodeID {
	out := make([]NodeID, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}
