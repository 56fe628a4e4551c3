package tree

// UpdateContent returns a tree in which every node's content has been
// replaced by f(content). Each node is visited exactly once; the visit
// order is unspecified.
func (t Tree) UpdateContent(f func(any) any) Tree {
	nt := t.clone()
	for id, n := range nt.nodes {
		n.Content = f(n.Content)
		nt.nodes[id] = n
	}
	return nt
}

// EachLeaf returns a tree in which the content of every leaf node has been
// replaced by f(content). Internal nodes are untouched.
func (t Tree) EachLeaf(f func(any) any) Tree {
	nt := t.clone()
	for id, n := range nt.nodes {
		if n.IsLeaf() {
			n.Content = f(n.Content)
			nt.nodes[id] = n
		}
	}
	return nt
}
