package eulertour

import (
	"fmt"

	"github.com/katalvlaran/eulerforest/avlseq"
)

// Verify checks every structural invariant of the forest:
//
//   - parent and child references agree in both directions;
//   - first/last occurrences are live and represent their node;
//   - every occurrence tree passes avlseq.Verify (balance, heights, sizes,
//     back-references);
//   - the in-order walk of each tree's sequence is the Euler tour of that
//     tree: it opens at first(root), every child's run opens at first(child)
//     and closes at last(child) directly followed by a parent occurrence, and
//     the walk ends at last(root);
//   - every node belongs to exactly one such tour.
//
// Returns nil or an error wrapping ErrInvariant.
// Complexity: O(n).
func (f *Forest[T]) Verify() error {
	// 1. Forest references
	for id := NodeID(1); int(id) < len(f.nodes); id++ {
		n := &f.nodes[id]
		if n.parent != NoNode {
			if n.parent < NoNode || int(n.parent) >= len(f.nodes) {
				return fmt.Errorf("%w: node %d has unknown parent %d", ErrInvariant, id, n.parent)
			}
			if _, ok := f.nodes[n.parent].children[id]; !ok {
				return fmt.Errorf("%w: node %d missing from children of parent %d", ErrInvariant, id, n.parent)
			}
		}
		for c := range n.children {
			if c <= NoNode || int(c) >= len(f.nodes) || f.nodes[c].parent != id {
				return fmt.Errorf("%w: child %d of %d does not point back", ErrInvariant, c, id)
			}
		}
		for _, h := range [2]avlseq.Handle{n.first, n.last} {
			if !f.seq.Live(h) || NodeID(f.seq.Owner(h)) != id {
				return fmt.Errorf("%w: node %d has foreign occurrence %d", ErrInvariant, id, h)
			}
		}
	}

	// 2. One tour per tree root
	covered := 0
	occurrences := 0
	for _, r := range f.Roots() {
		top := f.seq.Root(f.nodes[r].last)
		if err := f.seq.Verify(top); err != nil {
			return fmt.Errorf("%w: tree of %d: %w", ErrInvariant, r, err)
		}
		seen, err := f.verifyTour(r, top)
		if err != nil {
			return err
		}
		covered += seen
		occurrences += f.seq.Size(top)
	}
	if covered != f.Len() {
		return fmt.Errorf("%w: tours cover %d of %d nodes", ErrInvariant, covered, f.Len())
	}
	if occurrences != f.seq.Len() {
		return fmt.Errorf("%w: %d live occurrences, tours hold %d", ErrInvariant, f.seq.Len(), occurrences)
	}

	return nil
}

// verifyTour replays the sequence below top as a depth-first walk from r,
// keeping the open path on an explicit stack, and returns the number of
// nodes visited.
func (f *Forest[T]) verifyTour(r NodeID, top avlseq.Handle) (int, error) {
	hs := f.seq.Handles(top)
	if len(hs) == 0 || hs[0] != f.nodes[r].first {
		return 0, fmt.Errorf("%w: tour of %d does not open at its first occurrence", ErrInvariant, r)
	}

	stack := []NodeID{r}
	seen := map[NodeID]bool{r: true}
	prev := hs[0]
	for _, h := range hs[1:] {
		w := NodeID(f.seq.Owner(h))
		cur := stack[len(stack)-1]
		switch {
		case w > NoNode && int(w) < len(f.nodes) && f.nodes[w].parent == cur && !seen[w]:
			// entering a child
			if h != f.nodes[w].first {
				return 0, fmt.Errorf("%w: run of %d opens at %d, want first %d", ErrInvariant, w, h, f.nodes[w].first)
			}
			seen[w] = true
			stack = append(stack, w)

		case len(stack) > 1 && w == stack[len(stack)-2]:
			// returning to the parent through its bridge
			if prev != f.nodes[cur].last {
				return 0, fmt.Errorf("%w: run of %d closes at %d, want last %d", ErrInvariant, cur, prev, f.nodes[cur].last)
			}
			stack = stack[:len(stack)-1]

		default:
			return 0, fmt.Errorf("%w: unexpected occurrence %d of node %d inside run of %d", ErrInvariant, h, w, cur)
		}
		prev = h
	}
	if len(stack) != 1 || prev != f.nodes[r].last {
		return 0, fmt.Errorf("%w: tour of %d does not close at its last occurrence", ErrInvariant, r)
	}
	for id := range seen {
		for c := range f.nodes[id].children {
			if !seen[c] {
				return 0, fmt.Errorf("%w: child %d of %d missing from tour of %d", ErrInvariant, c, id, r)
			}
		}
	}
	if len(hs) != 2*len(seen)-1 {
		return 0, fmt.Errorf("%w: tour of %d holds %d occurrences for %d nodes", ErrInvariant, r, len(hs), len(seen))
	}

	return len(seen), nil
}
