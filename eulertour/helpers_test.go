// Package eulertour_test contains fixtures shared by the forest tests.
package eulertour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulerforest/eulertour"
)

// Payloads used across the scenario tests.
const (
	NameA = "A"
	NameB = "B"
	NameC = "C"
	NameD = "D"
)

// abcd is the reference forest of the link/cut scenarios:
//
//	  A
//	 / \
//	B   C
//	    |
//	    D
type abcd struct {
	f          *eulertour.Forest[string]
	A, B, C, D eulertour.NodeID
}

// newABCD adds the four nodes without linking anything.
func newABCD(t *testing.T, opts ...eulertour.Option) *abcd {
	t.Helper()
	f := eulertour.New[string](append([]eulertour.Option{eulertour.WithVerify()}, opts...)...)

	return &abcd{
		f: f,
		A: f.Add(NameA),
		B: f.Add(NameB),
		C: f.Add(NameC),
		D: f.Add(NameD),
	}
}

// linked returns the fully linked reference forest.
func linked(t *testing.T) *abcd {
	t.Helper()
	x := newABCD(t)
	require.NoError(t, x.f.Link(x.B, x.A))
	require.NoError(t, x.f.Link(x.C, x.A))
	require.NoError(t, x.f.Link(x.D, x.C))

	return x
}

// names renders a tour as payloads.
func names(t *testing.T, f *eulertour.Forest[string], tour []eulertour.NodeID) []string {
	t.Helper()
	out := make([]string, len(tour))
	for i, id := range tour {
		v, err := f.Value(id)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

// tourOf is Tour rendered as payloads.
func tourOf(t *testing.T, f *eulertour.Forest[string], v eulertour.NodeID) []string {
	t.Helper()
	tour, err := f.Tour(v)
	require.NoError(t, err)

	return names(t, f, tour)
}

// rootOf is FindRoot that fails the test on error.
func rootOf(t *testing.T, f *eulertour.Forest[string], v eulertour.NodeID) eulertour.NodeID {
	t.Helper()
	r, err := f.FindRoot(v)
	require.NoError(t, err)

	return r
}

// snapshot captures the tour of every tree, keyed by its root.
func snapshot(t *testing.T, f *eulertour.Forest[string]) map[eulertour.NodeID][]string {
	t.Helper()
	out := make(map[eulertour.NodeID][]string)
	for _, r := range f.Roots() {
		out[r] = tourOf(t, f, r)
	}

	return out
}
