package tree

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource produces fresh node ids. Implementations must yield ids that are,
// with overwhelming probability, unique for the lifetime of a process;
// collisions are not detected.
type IDSource interface {
	NewID() NodeID
}

// RandomIDs generates UUIDv4 ids. This is the default source; 122 bits of
// entropy make collisions negligible for any realistic tree size.
type RandomIDs struct{}

// NewID returns a fresh random UUID string.
func (RandomIDs) NewID() NodeID { return NodeID(uuid.NewString()) }

// SequenceIDs generates deterministic ids "prefix1", "prefix2", ... in
// construction order. Intended for tests and reproducible fixtures; a
// process should use at most one SequenceIDs per id namespace.
type SequenceIDs struct {
	prefix string
	next   uint64
}

// NewSequenceIDs creates a deterministic id source with the given prefix.
func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *SequenceIDs) NewID() NodeID {
	s.next++
	return NodeID(fmt.Sprintf("%s%d", s.prefix, s.next))
}

// Factory constructs nodes bound to an id source. The zero value uses
// [RandomIDs], so client code can simply write tree.Factory{}.Node(...).
type Factory struct {
	IDs IDSource
}

func (f Factory) newID() NodeID {
	if f.IDs == nil {
		return RandomIDs{}.NewID()
	}
	return f.IDs.NewID()
}

// Node returns a standalone node with a fresh id, the given name and
// content, level 0, no parent, and no children.
func (f Factory) Node(name string, content any) Node {
	return Node{ID: f.newID(), Name: name, Content: content}
}

// NamedNode returns a standalone node with the given name and no content.
func (f Factory) NamedNode(name string) Node { return f.Node(name, nil) }

// BlankNode returns a standalone node with neither name nor content.
func (f Factory) BlankNode() Node { return f.Node("", nil) }

// NewNode is shorthand for Factory{}.Node.
func NewNode(name string, content any) Node { return Factory{}.Node(name, content) }

// NewNamedNode is shorthand for Factory{}.NamedNode.
func NewNamedNode(name string) Node { return Factory{}.NamedNode(name) }

// NewBlankNode is shorthand for Factory{}.BlankNode.
func NewBlankNode() Node { return Factory{}.BlankNode() }
