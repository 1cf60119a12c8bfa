package workload

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eulerforest/eulertour"
)

// sentinels are the error classes Replay compares.
var sentinels = []error{
	eulertour.ErrNodeNotFound,
	eulertour.ErrAlreadyAttached,
	eulertour.ErrAlreadyRoot,
	eulertour.ErrWouldCreateCycle,
}

// Populate adds n nodes to f, carrying their index as payload, and returns
// their ids in index order.
func Populate(f *eulertour.Forest[int], n int) []eulertour.NodeID {
	ids := make([]eulertour.NodeID, n)
	for i := range ids {
		ids[i] = f.Add(i)
	}

	return ids
}

// Replay applies ops to f and to a fresh Oracle over len(nodes) indices,
// where nodes[i] is the forest id of index i. Indices outside the slice map to
// eulertour.NoNode. Every link and cut must succeed or fail with the same
// sentinel on both sides, and every find-root must agree.
//
// The forest is expected to hold nodes as isolated roots on entry.
// Returns the stats of the ops applied so far, and on disagreement an error
// wrapping ErrMismatch that names the op.
// Complexity: O(m log n) for the forest plus O(m·depth) for the oracle.
func Replay(f *eulertour.Forest[int], nodes []eulertour.NodeID, ops []Op) (Stats, error) {
	oracle := NewOracle(len(nodes))
	index := make(map[eulertour.NodeID]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}
	id := func(i int) eulertour.NodeID {
		if i < 0 || i >= len(nodes) {
			return eulertour.NoNode
		}
		return nodes[i]
	}

	var st Stats
	for step, op := range ops {
		switch op.Kind {
		case OpLink:
			got := f.Link(id(op.U), id(op.V))
			want := oracle.Link(op.U, op.V)
			if err := compare(got, want); err != nil {
				return st, fmt.Errorf("%w: op %d %v: %w", ErrMismatch, step, op, err)
			}
			st.count(&st.Links, want)

		case OpCut:
			_, got := f.Cut(id(op.U))
			want := oracle.Cut(op.U)
			if err := compare(got, want); err != nil {
				return st, fmt.Errorf("%w: op %d %v: %w", ErrMismatch, step, op, err)
			}
			st.count(&st.Cuts, want)

		case OpFindRoot:
			r, got := f.FindRoot(id(op.U))
			wantRoot, want := oracle.FindRoot(op.U)
			if err := compare(got, want); err != nil {
				return st, fmt.Errorf("%w: op %d %v: %w", ErrMismatch, step, op, err)
			}
			if want == nil && index[r] != wantRoot {
				return st, fmt.Errorf("%w: op %d %v: root %d, want %d", ErrMismatch, step, op, index[r], wantRoot)
			}
			st.count(&st.Finds, want)

		default:
			return st, fmt.Errorf("%w: op %d: unknown kind %v", ErrMismatch, step, op.Kind)
		}
	}

	return st, nil
}

// count credits ok on success and Rejected otherwise.
func (s *Stats) count(ok *int, err error) {
	if err != nil {
		s.Rejected++
		return
	}
	*ok++
}

// compare reports whether got and want fall in the same error class.
func compare(got, want error) error {
	if classOf(got) != classOf(want) {
		return fmt.Errorf("forest returned %v, oracle %v", got, want)
	}

	return nil
}

func classOf(err error) error {
	if err == nil {
		return nil
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s
		}
	}

	return err
}
