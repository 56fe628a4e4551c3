package tree

import "fmt"

// Signal tells [Tree.Fold] how to proceed after a step.
type Signal int

const (
	// SignalContinue visits the next node in pre-order.
	SignalContinue Signal = iota
	// SignalHalt ends the fold; the accumulator is final.
	SignalHalt
	// SignalSuspend pauses the fold and hands back the walker so it can be
	// resumed later from the next node.
	SignalSuspend
)

// StepFunc is a fold step: it receives the accumulator and the current node
// and returns the new accumulator plus a [Signal]. Returning an unknown
// signal value is a contract violation and panics.
type StepFunc func(acc any, n Node) (any, Signal)

// Walker is a lazy pre-order iterator over a tree: each node is produced
// before its children, children in their stored order. A Walker is finite
// and single-use; obtain a fresh one from [Tree.Walk] to restart.
//
// Next panics on a dangling child reference, since that means the tree's
// map invariant was already broken by an earlier bug.
type Walker struct {
	t     Tree
	stack []NodeID
}

// Walk returns a new pre-order walker positioned before the root.
func (t Tree) Walk() *Walker {
	w := &Walker{t: t}
	if !t.IsEmpty() {
		w.stack = []NodeID{t.root}
	}
	return w
}

// Next returns the next node in pre-order and true, or a zero Node and
// false when the walk is exhausted.
func (w *Walker) Next() (Node, bool) {
	if len(w.stack) == 0 {
		return Node{}, false
	}
	id := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	n := w.t.mustNode(id)
	for i := len(n.Children) - 1; i >= 0; i-- {
		w.stack = append(w.stack, n.Children[i])
	}
	return n, true
}

// Fold runs step over the remaining nodes of the walk, threading the
// accumulator through each call. It returns the final accumulator and, when
// the step suspended, the walker itself so the caller can resume with
// another Fold (or Next) later; after exhaustion or [SignalHalt] the second
// result is nil.
func (w *Walker) Fold(init any, step StepFunc) (any, *Walker) {
	acc := init
	for {
		n, ok := w.Next()
		if !ok {
			return acc, nil
		}
		next, sig := step(acc, n)
		acc = next
		switch sig {
		case SignalContinue:
		case SignalHalt:
			return acc, nil
		case SignalSuspend:
			return acc, w
		default:
			panic(fmt.Sprintf("tree: step returned invalid signal %d", sig))
		}
	}
}

// Fold runs a suspendable fold over the whole tree in pre-order.
// See [Walker.Fold] for the resumption protocol.
func (t Tree) Fold(init any, step StepFunc) (any, *Walker) {
	return t.Walk().Fold(init, step)
}

// ToList returns every node in pre-order: the root first, then each child
// subtree depth-first in stored child order. Panics on a dangling child
// reference.
func (t Tree) ToList() []Node {
	out := make([]Node, 0, len(t.nodes))
	w := t.Walk()
	for {
		n, ok := w.Next()
		if !ok {
			return out
		}
		out = append(out, n)
	}
}
