package eulertour

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/eulerforest/avlseq"
)

// Len returns the number of nodes ever added to the forest.
func (f *Forest[T]) Len() int { return len(f.nodes) - 1 }

// Nodes returns every NodeID in ascending order.
func (f *Forest[T]) Nodes() []NodeID {
	out := make([]NodeID, 0, f.Len())
	for id := NodeID(1); int(id) < len(f.nodes); id++ {
		out = append(out, id)
	}

	return out
}

// Sequence exposes the occurrence arena for inspection. Callers must not
// mutate it.
func (f *Forest[T]) Sequence() *avlseq.Sequence { return f.seq }

// Value returns the payload of v.
func (f *Forest[T]) Value(v NodeID) (T, error) {
	n, err := f.lookup(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("eulertour: value of %d: %w", v, err)
	}

	return n.value, nil
}

// SetValue replaces the payload of v.
func (f *Forest[T]) SetValue(v NodeID, value T) error {
	n, err := f.lookup(v)
	if err != nil {
		return fmt.Errorf("eulertour: set value of %d: %w", v, err)
	}
	n.value = value

	return nil
}

// Parent returns v's parent and true, or NoNode and false if v is a ROOT.
func (f *Forest[T]) Parent(v NodeID) (NodeID, bool, error) {
	n, err := f.lookup(v)
	if err != nil {
		return NoNode, false, fmt.Errorf("eulertour: parent of %d: %w", v, err)
	}

	return n.parent, n.parent != NoNode, nil
}

// State reports whether v is a ROOT or ATTACHED.
func (f *Forest[T]) State(v NodeID) (State, error) {
	n, err := f.lookup(v)
	if err != nil {
		return Root, fmt.Errorf("eulertour: state of %d: %w", v, err)
	}
	if n.parent == NoNode {
		return Root, nil
	}

	return Attached, nil
}

// Children returns v's children sorted ascending.
// Complexity: O(k log k) for k children.
func (f *Forest[T]) Children(v NodeID) ([]NodeID, error) {
	n, err := f.lookup(v)
	if err != nil {
		return nil, fmt.Errorf("eulertour: children of %d: %w", v, err)
	}
	out := make([]NodeID, 0, len(n.children))
	for c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// HasChild reports whether c is currently a child of p. Unknown ids report false.
func (f *Forest[T]) HasChild(p, c NodeID) bool {
	n, err := f.lookup(p)
	if err != nil {
		return false
	}
	_, ok := n.children[c]

	return ok
}

// Tour returns the Euler tour of v's tree: the represented node of every
// occurrence in sequence order, starting and ending with the tree root.
// Complexity: O(m) for a tree of m nodes.
func (f *Forest[T]) Tour(v NodeID) ([]NodeID, error) {
	top, err := f.SequenceRoot(v)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, 0, f.seq.Size(top))
	f.seq.Walk(top, func(h avlseq.Handle) bool {
		out = append(out, NodeID(f.seq.Owner(h)))
		return true
	})

	return out, nil
}

// Roots returns the root of every tree in the forest, ascending.
func (f *Forest[T]) Roots() []NodeID {
	var out []NodeID
	for id := NodeID(1); int(id) < len(f.nodes); id++ {
		if f.nodes[id].parent == NoNode {
			out = append(out, id)
		}
	}

	return out
}
