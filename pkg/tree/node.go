package tree

// NodeID is the opaque identifier of a node. Ids are assigned once at
// construction and never change; all cross-references inside a [Tree] go
// through ids rather than pointers.
type NodeID string

// NoParent is the sentinel parent id carried by a root node.
const NoParent NodeID = ""

// Node is an identity-bearing record in a tree: a display name, an arbitrary
// content payload, the id of its parent, its depth, and the ordered ids of
// its children.
//
// Node is a plain value. Fields may be read freely, but the Children slice of
// a node obtained from a Tree is a read-only view - modifying it corrupts the
// tree it came from. Structural changes go through the Tree operations.
type Node struct {
	ID       NodeID  // Unique identifier, assigned at construction
	Name     string  // Display label, free-form text
	Content  any     // Opaque payload; never inspected structurally
	Parent   NodeID  // Owning node id, NoParent for a root
	Level    int     // Depth, 0 for a root
	Children []NodeID // Ordered child ids, duplicate-free
}

// IsRoot reports whether the node is a root (has no parent).
func (n Node) IsRoot() bool { return n.Parent == NoParent }

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// HasContent reports whether the node carries a non-nil content payload.
func (n Node) HasContent() bool { return n.Content != nil }
