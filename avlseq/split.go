package avlseq

import "fmt"

// Join builds one balanced tree holding left, then bridge, then right, in
// that in-order sequence. left and right must be roots (or Nil) of disjoint
// trees and bridge must be isolated.
//
// Implementation:
//   - Stage 1: if the two heights differ by at most one, bridge simply becomes
//     their common parent.
//   - Stage 2: otherwise walk down the boundary spine of the taller tree (right
//     spine of left, or left spine of right) to the first node c whose height
//     is at most shorter+1, and splice bridge in c's place with c and the
//     shorter tree as its children.
//   - Stage 3: recompute and rebalance from the splice point up to the root.
//
// Complexity: O(|height(left) - height(right)| + 1).
func (s *Sequence) Join(left, bridge, right Handle) Handle {
	s.mustIsolated(bridge, "join")
	s.mustRoot(left, "join")
	s.mustRoot(right, "join")

	hl, hr := s.Height(left), s.Height(right)
	switch {
	case hl > hr+1:
		p, c := Nil, left
		for s.Height(c) > hr+1 {
			p, c = c, s.nodes[c].right
		}
		s.setLeft(bridge, c)
		s.setRight(bridge, right)
		s.update(bridge)
		s.setRight(p, bridge)

		return s.RebalancePathToRoot(p)

	case hr > hl+1:
		p, c := Nil, right
		for s.Height(c) > hl+1 {
			p, c = c, s.nodes[c].left
		}
		s.setLeft(bridge, left)
		s.setRight(bridge, c)
		s.update(bridge)
		s.setLeft(p, bridge)

		return s.RebalancePathToRoot(p)
	}

	s.setLeft(bridge, left)
	s.setRight(bridge, right)
	s.update(bridge)

	return bridge
}

// Split partitions the tree containing pivot into every occurrence before
// pivot and every occurrence after it. pivot itself lands at the front of the
// right result when pivotGoesRight is true, at the back of the left result
// otherwise. Either result may be Nil.
//
// The split unzips the ancestor chain bottom-up: each ancestor reached from
// its left child is joined, with its right subtree, onto the right
// accumulator; each ancestor reached from its right child is joined, with its
// left subtree, onto the left accumulator. The joins along the path cost
// O(log n) in total.
func (s *Sequence) Split(pivot Handle, pivotGoesRight bool) (left, right Handle) {
	n := s.node(pivot)
	left, right = n.left, n.right
	p := n.parent
	fromLeft := p != Nil && s.nodes[p].left == pivot

	s.detach(left)
	s.detach(right)
	s.isolate(pivot)
	if pivotGoesRight {
		right = s.Join(Nil, pivot, right)
	} else {
		left = s.Join(left, pivot, Nil)
	}

	for p != Nil {
		next := s.nodes[p].parent
		nextFromLeft := next != Nil && s.nodes[next].left == p
		pl, pr := s.nodes[p].left, s.nodes[p].right
		s.isolate(p)

		if fromLeft {
			s.detach(pr)
			right = s.Join(right, p, pr)
		} else {
			s.detach(pl)
			left = s.Join(pl, p, left)
		}
		p, fromLeft = next, nextFromLeft
	}

	return left, right
}

// Concatenate merges two order-adjacent trees (every occurrence of left
// precedes every occurrence of right) and returns the merged root. The
// boundary element of the taller side, the max of left when left is not
// shorter and the min of right otherwise, is removed and reused as the
// bridge of a Join. A donor holding only that element degenerates into
// attaching the other tree below it.
// Complexity: O(log n).
func (s *Sequence) Concatenate(left, right Handle) Handle {
	switch {
	case left == Nil:
		return right
	case right == Nil:
		return left
	}
	s.mustRoot(left, "concatenate")
	s.mustRoot(right, "concatenate")

	if s.Height(left) >= s.Height(right) {
		m := s.Max(left)
		left = s.removeExtremal(m)
		return s.Join(left, m, right)
	}
	m := s.Min(right)
	right = s.removeExtremal(m)

	return s.Join(left, m, right)
}

// removeExtremal unlinks h, which must have at most one child (a min or max
// of its tree), and returns the root of what remains, or Nil.
func (s *Sequence) removeExtremal(h Handle) Handle {
	n := s.node(h)
	if n.left != Nil && n.right != Nil {
		panic(fmt.Sprintf("avlseq: occurrence %d is not extremal", h))
	}
	child := n.left
	if child == Nil {
		child = n.right
	}
	p := n.parent

	s.isolate(h)
	if p == Nil {
		s.detach(child)
		return child
	}
	s.replaceChild(p, h, child)

	return s.RebalancePathToRoot(p)
}
