// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Arena allocation, read-only getters, height/balance bookkeeping,
//       rotations, rebalancing and leaf insertion.
// Policy:
//   - Every mutation keeps in-order sequence order exactly.
//   - No mutation holds an *occurrence across NewOccurrence (the arena may grow).

package avlseq

import "fmt"

// NewOccurrence allocates a fresh isolated occurrence (a one-element sequence)
// carrying the opaque owner value. Released slots are reused first.
// Complexity: O(1) amortized.
func (s *Sequence) NewOccurrence(owner int) Handle {
	var h Handle
	if n := len(s.free); n > 0 {
		h = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.nodes = append(s.nodes, occurrence{})
		h = Handle(len(s.nodes) - 1)
	}
	s.nodes[h] = occurrence{size: 1, owner: owner, live: true}
	s.live++

	return h
}

// Release returns an isolated occurrence to the arena. The handle must not be
// used afterwards; it may be handed out again by NewOccurrence.
func (s *Sequence) Release(h Handle) {
	s.mustIsolated(h, "release")
	s.nodes[h] = occurrence{}
	s.free = append(s.free, h)
	s.live--
}

// Len reports the number of live occurrences across every tree in the arena.
func (s *Sequence) Len() int { return s.live }

// Live reports whether h refers to an allocated occurrence.
func (s *Sequence) Live(h Handle) bool {
	return h > Nil && int(h) < len(s.nodes) && s.nodes[h].live
}

// Owner returns the value h was allocated with.
func (s *Sequence) Owner(h Handle) int { return s.node(h).owner }

// Parent returns the parent of h, or Nil if h is a tree root.
func (s *Sequence) Parent(h Handle) Handle { return s.node(h).parent }

// Left returns the left child of h.
func (s *Sequence) Left(h Handle) Handle { return s.node(h).left }

// Right returns the right child of h.
func (s *Sequence) Right(h Handle) Handle { return s.node(h).right }

// Height returns the cached height of the subtree at h; Nil has height -1.
func (s *Sequence) Height(h Handle) int {
	if h == Nil {
		return -1
	}

	return s.node(h).height
}

// Balance returns the cached balance factor of h.
func (s *Sequence) Balance(h Handle) int {
	if h == Nil {
		return 0
	}

	return s.node(h).balance
}

// Size returns the number of occurrences in the subtree at h; Nil has size 0.
func (s *Sequence) Size(h Handle) int {
	if h == Nil {
		return 0
	}

	return s.node(h).size
}

// Root climbs parent links from h to the root of its tree.
// Complexity: O(log n).
func (s *Sequence) Root(h Handle) Handle {
	s.node(h)
	for p := s.nodes[h].parent; p != Nil; p = s.nodes[h].parent {
		h = p
	}

	return h
}

// Min returns the leftmost occurrence of the subtree at h, or Nil for Nil.
func (s *Sequence) Min(h Handle) Handle {
	if h == Nil {
		return Nil
	}
	for l := s.node(h).left; l != Nil; l = s.nodes[h].left {
		h = l
	}

	return h
}

// Max returns the rightmost occurrence of the subtree at h, or Nil for Nil.
func (s *Sequence) Max(h Handle) Handle {
	if h == Nil {
		return Nil
	}
	for r := s.node(h).right; r != Nil; r = s.nodes[h].right {
		h = r
	}

	return h
}

// Next returns the in-order successor of h, or Nil if h is last.
func (s *Sequence) Next(h Handle) Handle {
	if r := s.node(h).right; r != Nil {
		return s.Min(r)
	}
	p := s.nodes[h].parent
	for p != Nil && s.nodes[p].right == h {
		h, p = p, s.nodes[p].parent
	}

	return p
}

// Prev returns the in-order predecessor of h, or Nil if h is first.
func (s *Sequence) Prev(h Handle) Handle {
	if l := s.node(h).left; l != Nil {
		return s.Max(l)
	}
	p := s.nodes[h].parent
	for p != Nil && s.nodes[p].left == h {
		h, p = p, s.nodes[p].parent
	}

	return p
}

// Position returns the 0-based in-order index of h within its tree.
// Complexity: O(log n).
func (s *Sequence) Position(h Handle) int {
	idx := s.Size(s.node(h).left)
	for p := s.nodes[h].parent; p != Nil; h, p = p, s.nodes[p].parent {
		if s.nodes[p].right == h {
			idx += s.Size(s.nodes[p].left) + 1
		}
	}

	return idx
}

// At returns the occurrence at 0-based in-order index i of the subtree at
// root, or Nil when i is out of range.
// Complexity: O(log n).
func (s *Sequence) At(root Handle, i int) Handle {
	if i < 0 || i >= s.Size(root) {
		return Nil
	}
	h := root
	for h != Nil {
		ls := s.Size(s.nodes[h].left)
		switch {
		case i < ls:
			h = s.nodes[h].left
		case i == ls:
			return h
		default:
			i -= ls + 1
			h = s.nodes[h].right
		}
	}

	return Nil
}

// RotateLeft rotates around h, lifting its right child into h's place:
// (h a (y b c)) becomes (y (h a b) c). Heights and balances of h, y and
// their former shared parent are recomputed. Returns y.
func (s *Sequence) RotateLeft(h Handle) Handle {
	p := s.node(h).parent
	y := s.nodes[h].right
	if y == Nil {
		panic(fmt.Sprintf("avlseq: rotate left around %d without right child", h))
	}
	b := s.nodes[y].left

	s.setRight(h, b)
	s.replaceChild(p, h, y)
	s.setLeft(y, h)

	s.update(h)
	s.update(y)
	if p != Nil {
		s.update(p)
	}
	if s.opts.OnRotate != nil {
		s.opts.OnRotate(h, RotLeft)
	}

	return y
}

// RotateRight rotates around h, lifting its left child into h's place:
// (h (x a b) c) becomes (x a (h b c)). Returns x.
func (s *Sequence) RotateRight(h Handle) Handle {
	p := s.node(h).parent
	x := s.nodes[h].left
	if x == Nil {
		panic(fmt.Sprintf("avlseq: rotate right around %d without left child", h))
	}
	b := s.nodes[x].right

	s.setLeft(h, b)
	s.replaceChild(p, h, x)
	s.setRight(x, h)

	s.update(h)
	s.update(x)
	if p != Nil {
		s.update(p)
	}
	if s.opts.OnRotate != nil {
		s.opts.OnRotate(h, RotRight)
	}

	return x
}

// Rebalance restores the AVL condition at h when its cached balance factor
// has magnitude greater than one, using a single rotation or a double
// rotation when the heavy child leans the other way. Returns the root of the
// subtree that now occupies h's position (h itself when nothing was done).
func (s *Sequence) Rebalance(h Handle) Handle {
	n := s.node(h)
	switch {
	case n.balance > 1:
		if s.nodes[n.left].balance < 0 {
			s.RotateLeft(n.left)
		}
		return s.RotateRight(h)
	case n.balance < -1:
		if s.nodes[n.right].balance > 0 {
			s.RotateRight(n.right)
		}
		return s.RotateLeft(h)
	}

	return h
}

// RebalancePathToRoot recomputes cached fields on every node from h up to the
// root, rebalancing each node found out of range on the way. Split and
// concatenate can leave several ancestors unbalanced at once, so the walk
// never stops early. Returns the root of the tree (Nil for Nil).
func (s *Sequence) RebalancePathToRoot(h Handle) Handle {
	root := h
	for h != Nil {
		s.update(h)
		if b := s.nodes[h].balance; b > 1 || b < -1 {
			h = s.Rebalance(h)
		}
		root = h
		h = s.nodes[h].parent
	}

	return root
}

// InsertAfter places the isolated occurrence h immediately after anchor in
// in-order sequence, as a leaf: the right child of anchor or the leftmost
// of anchor's right subtree. Returns the new root of the tree.
// Complexity: O(log n).
func (s *Sequence) InsertAfter(anchor, h Handle) Handle {
	s.mustIsolated(h, "insert")
	if r := s.node(anchor).right; r == Nil {
		s.setRight(anchor, h)
	} else {
		s.setLeft(s.Min(r), h)
	}

	return s.RebalancePathToRoot(s.nodes[h].parent)
}

// InsertBefore places the isolated occurrence h immediately before anchor,
// mirroring InsertAfter. Returns the new root of the tree.
func (s *Sequence) InsertBefore(anchor, h Handle) Handle {
	s.mustIsolated(h, "insert")
	if l := s.node(anchor).left; l == Nil {
		s.setLeft(anchor, h)
	} else {
		s.setRight(s.Max(l), h)
	}

	return s.RebalancePathToRoot(s.nodes[h].parent)
}

// node returns the live slot for h or panics.
func (s *Sequence) node(h Handle) *occurrence {
	if !s.Live(h) {
		panic(fmt.Sprintf("avlseq: invalid handle %d", h))
	}

	return &s.nodes[h]
}

func (s *Sequence) mustIsolated(h Handle, op string) {
	n := s.node(h)
	if n.left != Nil || n.right != Nil || n.parent != Nil {
		panic(fmt.Sprintf("avlseq: %s of linked occurrence %d", op, h))
	}
}

func (s *Sequence) mustRoot(h Handle, op string) {
	if h != Nil && s.node(h).parent != Nil {
		panic(fmt.Sprintf("avlseq: %s of non-root occurrence %d", op, h))
	}
}

// update recomputes height, balance and size of h from its children.
func (s *Sequence) update(h Handle) {
	n := &s.nodes[h]
	hl, hr := s.Height(n.left), s.Height(n.right)
	n.height = 1 + max(hl, hr)
	n.balance = hl - hr
	n.size = 1 + s.Size(n.left) + s.Size(n.right)
}

func (s *Sequence) setLeft(p, c Handle) {
	s.nodes[p].left = c
	if c != Nil {
		s.nodes[c].parent = p
	}
}

func (s *Sequence) setRight(p, c Handle) {
	s.nodes[p].right = c
	if c != Nil {
		s.nodes[c].parent = p
	}
}

// replaceChild points p's link that currently holds old at x instead.
// With p == Nil, x becomes a tree root.
func (s *Sequence) replaceChild(p, old, x Handle) {
	switch {
	case p == Nil:
		if x != Nil {
			s.nodes[x].parent = Nil
		}
	case s.nodes[p].left == old:
		s.setLeft(p, x)
	case s.nodes[p].right == old:
		s.setRight(p, x)
	default:
		panic(fmt.Sprintf("avlseq: corrupt parent link %d -> %d", old, p))
	}
}

// isolate turns h into a one-element tree without touching its former
// neighbours' links.
func (s *Sequence) isolate(h Handle) {
	n := &s.nodes[h]
	n.left, n.right, n.parent = Nil, Nil, Nil
	n.height, n.balance, n.size = 0, 0, 1
}

// detach makes h a tree root without touching its former parent's link.
func (s *Sequence) detach(h Handle) {
	if h != Nil {
		s.nodes[h].parent = Nil
	}
}
