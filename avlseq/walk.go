package avlseq

import "fmt"

// Walk visits the subtree at root in in-order sequence, calling fn for every
// occurrence until fn returns false. The traversal keeps an explicit stack, so
// its depth is bounded by the tree height rather than the goroutine stack.
func (s *Sequence) Walk(root Handle, fn func(h Handle) bool) {
	stack := make([]Handle, 0, s.Height(root)+1)
	cur := root
	for cur != Nil || len(stack) > 0 {
		for cur != Nil {
			stack = append(stack, cur)
			cur = s.node(cur).left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		cur = s.nodes[cur].right
	}
}

// Handles returns the occurrences of the subtree at root in in-order sequence.
func (s *Sequence) Handles(root Handle) []Handle {
	out := make([]Handle, 0, s.Size(root))
	s.Walk(root, func(h Handle) bool {
		out = append(out, h)
		return true
	})

	return out
}

// Owners returns the owner values of the subtree at root in in-order sequence.
func (s *Sequence) Owners(root Handle) []int {
	out := make([]int, 0, s.Size(root))
	s.Walk(root, func(h Handle) bool {
		out = append(out, s.nodes[h].owner)
		return true
	})

	return out
}

// Verify checks the tree rooted at root: root has no parent, every child
// points back at its parent, and every cached height, balance factor and size
// matches the shape below it with |balance| <= 1.
// Returns nil on success or an error wrapping ErrCorrupt.
// Complexity: O(n).
func (s *Sequence) Verify(root Handle) error {
	if root == Nil {
		return nil
	}
	if !s.Live(root) {
		return fmt.Errorf("%w: root %d is not live", ErrCorrupt, root)
	}
	if p := s.nodes[root].parent; p != Nil {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, root, p)
	}

	// Post-order with an explicit stack so heights below are checked first.
	type frame struct {
		h       Handle
		visited bool
	}
	stack := []frame{{h: root}}
	seen := 0
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		h := top.h
		n := &s.nodes[h]
		if !top.visited {
			top.visited = true
			seen++
			if seen > s.live {
				return fmt.Errorf("%w: cycle below root %d", ErrCorrupt, root)
			}
			for _, c := range [2]Handle{n.right, n.left} {
				if c == Nil {
					continue
				}
				if !s.Live(c) {
					return fmt.Errorf("%w: occurrence %d has dead child %d", ErrCorrupt, h, c)
				}
				if s.nodes[c].parent != h {
					return fmt.Errorf("%w: occurrence %d has parent %d, want %d",
						ErrCorrupt, c, s.nodes[c].parent, h)
				}
				stack = append(stack, frame{h: c})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		hl, hr := s.Height(n.left), s.Height(n.right)
		if want := 1 + max(hl, hr); n.height != want {
			return fmt.Errorf("%w: occurrence %d has height %d, want %d", ErrCorrupt, h, n.height, want)
		}
		if want := hl - hr; n.balance != want {
			return fmt.Errorf("%w: occurrence %d has balance %d, want %d", ErrCorrupt, h, n.balance, want)
		}
		if n.balance > 1 || n.balance < -1 {
			return fmt.Errorf("%w: occurrence %d is out of balance (%d)", ErrCorrupt, h, n.balance)
		}
		if want := 1 + s.Size(n.left) + s.Size(n.right); n.size != want {
			return fmt.Errorf("%w: occurrence %d has size %d, want %d", ErrCorrupt, h, n.size, want)
		}
	}

	return nil
}
