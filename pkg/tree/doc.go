// Package tree implements a general-purpose N-ary tree with value semantics.
//
// A [Tree] owns all of its nodes through an id-indexed map; nodes reference
// each other only by [NodeID], never by pointer, so the structure contains no
// reference cycles. Every structural operation (AddChild, MoveNodes, Delete,
// Detach, Merge, Put) is a pure function: it returns a new Tree value and
// leaves the receiver observably unchanged. Holding onto "the tree before the
// edit" is always safe, and concurrent readers of a single Tree value need no
// synchronization.
//
// # Identity
//
// Node ids are opaque strings generated at construction through an [IDSource].
// The default source produces UUIDs; tests inject [SequenceIDs] for
// reproducible fixtures. Ids are never reassigned.
//
// # Errors
//
// Operations that reference a missing id return sentinel errors such as
// [ErrNodeNotFound]. Contract violations - a node parenting itself, a
// dangling child reference discovered during traversal, a malformed fold
// signal - indicate a programming bug and panic with a descriptive message.
//
// # Example
//
//	f := tree.Factory{}
//	root := f.NamedNode("Root")
//	t := tree.NewWithRoot(root)
//	t, _ = t.AddChild(f.NamedNode("A"), root.ID)
//	t, _ = t.AddChild(f.NamedNode("B"), root.ID)
//	fmt.Println(t.Len()) // 3
package tree
