// SPDX-License-Identifier: MIT
//
// File: forest.go
// Role: Forest mutations (Add, Link, Cut) and root queries.
// Policy:
//   - Preconditions are checked before any state changes; a rejected call
//     leaves both the represented forest and the sequence untouched.
//   - Every sequence operation returns the root it produced and the caller
//     adopts it; no root handle is cached anywhere.

package eulertour

import (
	"fmt"

	"github.com/katalvlaran/eulerforest/avlseq"
)

// Add creates a standalone ROOT node carrying value. Its single occurrence is
// both its first and its last.
// Complexity: O(1) amortized.
func (f *Forest[T]) Add(value T) NodeID {
	id := NodeID(len(f.nodes))
	h := f.seq.NewOccurrence(int(id))
	f.nodes = append(f.nodes, forestNode[T]{value: value, first: h, last: h})

	return id
}

// Link attaches the tree rooted at child as a new child of parent.
//
// Implementation:
//   - Stage 1: validate both nodes; child must be a ROOT of a tree that does
//     not contain parent.
//   - Stage 2: record parent/child in the represented forest.
//   - Stage 3: insert a fresh bridge occurrence of parent right after
//     last(parent), split so that last(parent) ends the left part and the
//     bridge opens the right part, and concatenate left ++ tour(child) ++ right.
//   - Stage 4: the bridge becomes last(parent), so parent's occurrences keep
//     bracketing every descendant, including child's subtree.
//
// Errors:
//   - ErrNodeNotFound if either id is unknown.
//   - ErrAlreadyAttached if child has a parent.
//   - ErrWouldCreateCycle if child and parent share a tree (including child == parent).
//
// Complexity: O(log n).
func (f *Forest[T]) Link(child, parent NodeID) error {
	// 1. Validate
	u, err := f.lookup(child)
	if err != nil {
		return fmt.Errorf("eulertour: link %d under %d: %w", child, parent, err)
	}
	v, err := f.lookup(parent)
	if err != nil {
		return fmt.Errorf("eulertour: link %d under %d: %w", child, parent, err)
	}
	if u.parent != NoNode {
		return fmt.Errorf("eulertour: link %d under %d: %w (parent %d)", child, parent, ErrAlreadyAttached, u.parent)
	}
	childTour := f.seq.Root(u.last)
	if childTour == f.seq.Root(v.last) {
		return fmt.Errorf("eulertour: link %d under %d: %w", child, parent, ErrWouldCreateCycle)
	}

	// 2. Represented forest
	u.parent = parent
	if v.children == nil {
		v.children = make(map[NodeID]struct{})
	}
	v.children[child] = struct{}{}

	// 3. Occurrence sequence
	bridge := f.seq.NewOccurrence(int(parent))
	f.seq.InsertAfter(v.last, bridge)
	left, right := f.seq.Split(v.last, false)
	f.seq.Concatenate(f.seq.Concatenate(left, childTour), right)

	// 4. Parent's run now ends at the bridge
	v.last = bridge

	f.check()

	return nil
}

// Cut detaches the subtree rooted at v and returns it as an independent
// component.
//
// Implementation:
//   - Stage 1: validate; v must be ATTACHED.
//   - Stage 2: drop v from its parent's child set and clear v's parent.
//   - Stage 3: split before first(v) and after last(v), isolating v's run.
//   - Stage 4: peel off the parent bridge that directly follows the run and
//     release it; if it was last(parent), the parent occurrence directly
//     before the run takes over.
//   - Stage 5: concatenate the outer fragments to close the gap.
//
// Errors:
//   - ErrNodeNotFound if v is unknown.
//   - ErrAlreadyRoot if v has no parent.
//
// Complexity: O(log n).
func (f *Forest[T]) Cut(v NodeID) (Component, error) {
	// 1. Validate
	n, err := f.lookup(v)
	if err != nil {
		return Component{}, fmt.Errorf("eulertour: cut %d: %w", v, err)
	}
	if n.parent == NoNode {
		return Component{}, fmt.Errorf("eulertour: cut %d: %w", v, ErrAlreadyRoot)
	}

	// 2. Represented forest
	pid := n.parent
	p := &f.nodes[pid]
	delete(p.children, v)
	n.parent = NoNode

	// 3. Isolate [first(v) .. last(v)]
	left, _ := f.seq.Split(n.first, true)
	sub, rest := f.seq.Split(n.last, false)

	// 4. Remove the parent bridge behind the run
	bridge := f.seq.Min(rest)
	if bridge == avlseq.Nil || NodeID(f.seq.Owner(bridge)) != pid {
		panic(fmt.Sprintf("eulertour: run of %d is not followed by a bridge of %d", v, pid))
	}
	_, right := f.seq.Split(bridge, false)
	if p.last == bridge {
		p.last = f.seq.Max(left)
	}
	f.seq.Release(bridge)

	// 5. Close the gap
	f.seq.Concatenate(left, right)

	f.check()

	return Component{Root: v, Sequence: sub}, nil
}

// FindRoot returns the root of the represented tree containing v: the owner
// of the leftmost occurrence in v's sequence. It does not mutate anything.
// Complexity: O(log n).
func (f *Forest[T]) FindRoot(v NodeID) (NodeID, error) {
	n, err := f.lookup(v)
	if err != nil {
		return NoNode, fmt.Errorf("eulertour: find root of %d: %w", v, err)
	}
	top := f.seq.Root(n.last)

	return NodeID(f.seq.Owner(f.seq.Min(top))), nil
}

// SequenceRoot returns the root occurrence of the sequence holding v's
// occurrences. Two nodes share a tree exactly when their sequence roots match.
// Complexity: O(log n).
func (f *Forest[T]) SequenceRoot(v NodeID) (avlseq.Handle, error) {
	n, err := f.lookup(v)
	if err != nil {
		return avlseq.Nil, fmt.Errorf("eulertour: sequence root of %d: %w", v, err)
	}

	return f.seq.Root(n.last), nil
}

// Connected reports whether u and v belong to the same tree.
// Complexity: O(log n).
func (f *Forest[T]) Connected(u, v NodeID) (bool, error) {
	ru, err := f.SequenceRoot(u)
	if err != nil {
		return false, err
	}
	rv, err := f.SequenceRoot(v)
	if err != nil {
		return false, err
	}

	return ru == rv, nil
}

// ComponentSize returns the number of forest nodes in v's tree. A tree of m
// nodes has 2m-1 occurrences, so this is a cached-size lookup at the root.
// Complexity: O(log n).
func (f *Forest[T]) ComponentSize(v NodeID) (int, error) {
	top, err := f.SequenceRoot(v)
	if err != nil {
		return 0, err
	}

	return (f.seq.Size(top) + 1) / 2, nil
}

// lookup returns the arena slot for id. The pointer is valid until the next Add.
func (f *Forest[T]) lookup(id NodeID) (*forestNode[T], error) {
	if id <= NoNode || int(id) >= len(f.nodes) {
		return nil, ErrNodeNotFound
	}

	return &f.nodes[id], nil
}

// check enforces WithVerify.
func (f *Forest[T]) check() {
	if !f.opts.Verify {
		return
	}
	if err := f.Verify(); err != nil {
		panic(err)
	}
}
