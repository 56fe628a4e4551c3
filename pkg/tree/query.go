package tree

// Get returns the node with the given id and true, or a zero Node and false
// if the id is not in the tree.
func (t Tree) Get(id NodeID) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Root returns the root node and true, or a zero Node and false for an
// empty tree.
func (t Tree) Root() (Node, bool) {
	if t.IsEmpty() {
		return Node{}, false
	}
	return t.mustNode(t.root), true
}

// RootID returns the id of the root node, or NoParent for an empty tree.
func (t Tree) RootID() NodeID { return t.root }

// Parent returns the parent of n and true, or a zero Node and false when n
// is a root or not part of the tree.
func (t Tree) Parent(n Node) (Node, bool) {
	if n.Parent == NoParent {
		return Node{}, false
	}
	p, ok := t.nodes[n.Parent]
	return p, ok
}

// Children returns the child nodes of n in their stored order.
func (t Tree) Children(n Node) []Node {
	out := make([]Node, len(n.Children))
	for i, c := range n.Children {
		out[i] = t.mustNode(c)
	}
	return out
}

// Siblings returns the other children of n's parent, preserving their
// stored order. A root, or a node outside the tree, has no siblings.
func (t Tree) Siblings(n Node) []Node {
	p, ok := t.Parent(n)
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(p.Children)-1)
	for _, c := range p.Children {
		if c != n.ID {
			out = append(out, t.mustNode(c))
		}
	}
	return out
}

// Contains reports whether the tree holds a node with the given id.
func (t Tree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Len returns the number of nodes in the tree. O(1).
func (t Tree) Len() int { return len(t.nodes) }

// IsEmpty reports whether the tree has no nodes.
func (t Tree) IsEmpty() bool { return len(t.nodes) == 0 }
