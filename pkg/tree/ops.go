package tree

import (
	"fmt"
	"slices"
)

// AddChild returns a tree with child inserted as the last child of parent.
// Passing NoParent attaches to the current root; on an empty tree this
// returns [ErrEmptyTree].
//
// If child.ID already exists in the tree, the stored node's name and content
// are left untouched and the call acts as a move: the node (with its whole
// subtree) is unlinked from its current position and appended as the last
// child of parent, with levels recomputed through all descendants. Moving a
// node underneath its own subtree returns [ErrWouldCycle].
//
// If child.ID is new, the node is inserted as a leaf. Child ids carried by
// the input are dropped - they would reference nodes outside the map; graft
// whole subtrees with [Tree.Merge].
//
// AddChild panics if child.ID equals parent: a node cannot parent itself.
func (t Tree) AddChild(child Node, parent NodeID) (Tree, error) {
	if parent == NoParent {
		if t.IsEmpty() {
			return Tree{}, ErrEmptyTree
		}
		parent = t.root
	}
	if child.ID == parent {
		panic(fmt.Sprintf("tree: node %q cannot be its own parent", child.ID))
	}
	if _, ok := t.nodes[parent]; !ok {
		return Tree{}, fmt.Errorf("add child: parent %q: %w", parent, ErrNodeNotFound)
	}

	if _, exists := t.nodes[child.ID]; exists {
		return t.moveSiblings([]NodeID{child.ID}, parent)
	}

	nt := t.clone()
	p := nt.nodes[parent]
	child.Parent = parent
	child.Level = p.Level + 1
	child.Children = nil
	nt.nodes[child.ID] = child
	p.Children = withChild(p.Children, child.ID)
	nt.nodes[parent] = p
	return nt, nil
}

// MoveNodes returns a tree in which the listed nodes have been relocated to
// become the last children of parent, appended in the given order. The ids
// must all exist and currently share a single parent; a heterogeneous batch
// returns [ErrMixedParents]. An empty list is a no-op. Levels are recomputed
// through every moved subtree. Moving a node into its own subtree returns
// [ErrWouldCycle]; a node listed as its own destination panics.
func (t Tree) MoveNodes(ids []NodeID, parent NodeID) (Tree, error) {
	if len(ids) == 0 {
		return t, nil
	}
	if _, ok := t.nodes[parent]; !ok {
		return Tree{}, fmt.Errorf("move nodes: parent %q: %w", parent, ErrNodeNotFound)
	}
	var from NodeID
	for i, id := range ids {
		if id == parent {
			panic(fmt.Sprintf("tree: node %q cannot be its own parent", id))
		}
		n, ok := t.nodes[id]
		if !ok {
			return Tree{}, fmt.Errorf("move nodes: %q: %w", id, ErrNodeNotFound)
		}
		if i == 0 {
			from = n.Parent
		} else if n.Parent != from {
			return Tree{}, fmt.Errorf("move nodes: %q has parent %q, first id has %q: %w",
				id, n.Parent, from, ErrMixedParents)
		}
	}
	return t.moveSiblings(ids, parent)
}

// moveSiblings relocates a sibling group. Callers have verified that every
// id exists, that the group shares one parent, and that parent exists.
func (t Tree) moveSiblings(ids []NodeID, parent NodeID) (Tree, error) {
	for _, id := range ids {
		if t.inSubtree(id, parent) {
			return Tree{}, fmt.Errorf("move %q under %q: %w", id, parent, ErrWouldCycle)
		}
	}

	nt := t.clone()
	from := nt.nodes[ids[0]].Parent

	if from != NoParent {
		old := nt.nodes[from]
		kept := slices.Clone(old.Children)
		kept = slices.DeleteFunc(kept, func(c NodeID) bool { return slices.Contains(ids, c) })
		old.Children = kept
		nt.nodes[from] = old
	}

	p := nt.nodes[parent]
	children := slices.Clone(p.Children)
	for _, id := range ids {
		children = withoutChild(children, id) // re-adding an existing child moves it to the end
		children = append(children, id)
	}
	p.Children = children
	nt.nodes[parent] = p

	for _, id := range ids {
		n := nt.nodes[id]
		n.Parent = parent
		n.Level = nt.nodes[parent].Level + 1
		nt.nodes[id] = n
		nt.relevel(id)
	}
	return nt, nil
}

// Delete returns a tree with the node removed and its children promoted into
// its place: they are spliced into the deleted node's position among its
// parent's children, preserving relative order. Returns [ErrNodeNotFound]
// if the id is absent.
//
// Deleting the root promotes its first child as the new root; the root's
// remaining children are appended under the new root after that node's own
// children. Deleting a childless root yields the empty tree.
func (t Tree) Delete(id NodeID) (Tree, error) {
	n, ok := t.nodes[id]
	if !ok {
		return Tree{}, fmt.Errorf("delete: %q: %w", id, ErrNodeNotFound)
	}

	nt := t.clone()
	switch {
	case id != t.root:
		p := nt.nodes[n.Parent]
		idx := slices.Index(p.Children, id)
		children := make([]NodeID, 0, len(p.Children)-1+len(n.Children))
		children = append(children, p.Children[:idx]...)
		children = append(children, n.Children...)
		children = append(children, p.Children[idx+1:]...)
		p.Children = children
		nt.nodes[n.Parent] = p
		for _, c := range n.Children {
			cn := nt.nodes[c]
			cn.Parent = n.Parent
			cn.Level = p.Level + 1
			nt.nodes[c] = cn
			nt.relevel(c)
		}

	case len(n.Children) == 0:
		return New(), nil

	default:
		next := n.Children[0]
		root := nt.nodes[next]
		root.Parent = NoParent
		root.Level = 0
		root.Children = slices.Clone(root.Children)
		for _, c := range n.Children[1:] {
			root.Children = append(root.Children, c)
			cn := nt.nodes[c]
			cn.Parent = next
			nt.nodes[c] = cn
		}
		nt.nodes[next] = root
		nt.root = next
		nt.relevel(next)
	}

	delete(nt.nodes, id)
	return nt, nil
}

// Detach returns an independent tree holding a copy of the subtree rooted at
// id: the node becomes a root (level 0, no parent) and every descendant is
// copied in with its level recomputed and its child order preserved. The
// receiver is not modified - compose Detach with [Tree.Delete] to also
// remove the subtree from the source. Returns [ErrNodeNotFound] if the id
// is absent.
func (t Tree) Detach(id NodeID) (Tree, error) {
	n, ok := t.nodes[id]
	if !ok {
		return Tree{}, fmt.Errorf("detach: %q: %w", id, ErrNodeNotFound)
	}

	nt := Tree{root: id, nodes: make(map[NodeID]Node)}
	n.Parent = NoParent
	n.Level = 0
	n.Children = slices.Clone(n.Children)
	nt.nodes[id] = n

	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := nt.nodes[cur]
		for _, c := range parent.Children {
			child := t.mustNode(c)
			child.Level = parent.Level + 1
			child.Children = slices.Clone(child.Children)
			nt.nodes[c] = child
			stack = append(stack, c)
		}
	}
	return nt, nil
}

// Merge returns a tree with the whole of branch grafted on as a new child
// subtree of the node identified by at: the branch's root is appended to
// at's children and every branch node is absorbed with its level shifted to
// stay consistent with the new depth. The two node sets must be disjoint;
// a shared id returns [ErrIDCollision]. Returns [ErrNodeNotFound] if at is
// absent. Merging an empty branch is a no-op.
func (t Tree) Merge(branch Tree, at NodeID) (Tree, error) {
	host, ok := t.nodes[at]
	if !ok {
		return Tree{}, fmt.Errorf("merge: %q: %w", at, ErrNodeNotFound)
	}
	if branch.IsEmpty() {
		return t, nil
	}
	for id := range branch.nodes {
		if _, dup := t.nodes[id]; dup {
			return Tree{}, fmt.Errorf("merge: %q: %w", id, ErrIDCollision)
		}
	}

	nt := t.clone()
	shift := host.Level + 1
	for id, n := range branch.nodes {
		n.Level += shift
		n.Children = slices.Clone(n.Children)
		nt.nodes[id] = n
	}
	graft := nt.nodes[branch.root]
	graft.Parent = at
	nt.nodes[branch.root] = graft

	host.Children = withChild(host.Children, branch.root)
	nt.nodes[at] = host
	return nt, nil
}

// Put returns a tree in which the node's name and content are replaced by
// those of n; the stored node's parent, level, and children are preserved
// regardless of what n carries for those fields. Returns [ErrNodeNotFound]
// if the id is absent.
func (t Tree) Put(id NodeID, n Node) (Tree, error) {
	cur, ok := t.nodes[id]
	if !ok {
		return Tree{}, fmt.Errorf("put: %q: %w", id, ErrNodeNotFound)
	}
	nt := t.clone()
	cur.Name = n.Name
	cur.Content = n.Content
	nt.nodes[id] = cur
	return nt, nil
}
