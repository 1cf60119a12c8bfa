package eulertour_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulerforest/avlseq"
	"github.com/katalvlaran/eulerforest/eulertour"
)

func TestScenario_SingleNode(t *testing.T) {
	x := newABCD(t)

	assert.Equal(t, x.A, rootOf(t, x.f, x.A))
	assert.Equal(t, []string{NameA}, tourOf(t, x.f, x.A))

	st, err := x.f.State(x.A)
	require.NoError(t, err)
	assert.Equal(t, eulertour.Root, st)
	assert.Equal(t, "ROOT", st.String())

	size, err := x.f.ComponentSize(x.A)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
	assert.NoError(t, x.f.Verify())
}

func TestScenario_TwoChildren(t *testing.T) {
	x := newABCD(t)
	require.NoError(t, x.f.Link(x.B, x.A))
	require.NoError(t, x.f.Link(x.C, x.A))

	assert.Equal(t, x.A, rootOf(t, x.f, x.B))
	assert.Equal(t, x.A, rootOf(t, x.f, x.C))

	children, err := x.f.Children(x.A)
	require.NoError(t, err)
	assert.Equal(t, []eulertour.NodeID{x.B, x.C}, children)
	assert.True(t, x.f.HasChild(x.A, x.B))
	assert.False(t, x.f.HasChild(x.B, x.A))

	assert.Equal(t, []string{"A", "B", "A", "C", "A"}, tourOf(t, x.f, x.C))
}

func TestScenario_Grandchild(t *testing.T) {
	x := linked(t)

	assert.Equal(t, x.A, rootOf(t, x.f, x.D))
	assert.Equal(t, []string{"A", "B", "A", "C", "D", "C", "A"}, tourOf(t, x.f, x.D))

	size, err := x.f.ComponentSize(x.D)
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	st, err := x.f.State(x.D)
	require.NoError(t, err)
	assert.Equal(t, eulertour.Attached, st)
	assert.Equal(t, "ATTACHED", st.String())
}

func TestScenario_CutSubtree(t *testing.T) {
	x := linked(t)

	comp, err := x.f.Cut(x.C)
	require.NoError(t, err)
	assert.Equal(t, x.C, comp.Root)

	seqRoot, err := x.f.SequenceRoot(x.D)
	require.NoError(t, err)
	assert.Equal(t, seqRoot, comp.Sequence)

	assert.Equal(t, x.C, rootOf(t, x.f, x.D))
	assert.Equal(t, x.A, rootOf(t, x.f, x.B))
	assert.Equal(t, []string{"C", "D", "C"}, tourOf(t, x.f, x.D))
	assert.Equal(t, []string{"A", "B", "A"}, tourOf(t, x.f, x.A))

	children, err := x.f.Children(x.A)
	require.NoError(t, err)
	assert.Equal(t, []eulertour.NodeID{x.B}, children)

	parent, ok, err := x.f.Parent(x.C)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, eulertour.NoNode, parent)

	// Two trees of two nodes hold 3+3 occurrences; the bridge was released.
	assert.Equal(t, 6, x.f.Sequence().Len())

	connected, err := x.f.Connected(x.B, x.D)
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestScenario_CycleRejected(t *testing.T) {
	x := linked(t)
	before := snapshot(t, x.f)
	occurrences := x.f.Sequence().Len()

	for _, tc := range []struct {
		name          string
		child, parent eulertour.NodeID
	}{
		{"root under own child", x.A, x.B},
		{"root under grandchild", x.A, x.D},
		{"self", x.A, x.A},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := x.f.Link(tc.child, tc.parent)
			assert.ErrorIs(t, err, eulertour.ErrWouldCreateCycle)
			assert.Equal(t, before, snapshot(t, x.f))
			assert.Equal(t, occurrences, x.f.Sequence().Len())
			assert.NoError(t, x.f.Verify())
		})
	}
}

func TestLink_AlreadyAttached(t *testing.T) {
	x := linked(t)
	e := x.f.Add("E")
	before := snapshot(t, x.f)

	err := x.f.Link(x.B, e)
	assert.ErrorIs(t, err, eulertour.ErrAlreadyAttached)
	assert.ErrorContains(t, err, "parent 1")
	assert.Equal(t, before, snapshot(t, x.f))

	// Already attached wins over cycle detection.
	assert.ErrorIs(t, x.f.Link(x.D, x.B), eulertour.ErrAlreadyAttached)
}

func TestCut_AlreadyRoot(t *testing.T) {
	x := linked(t)
	before := snapshot(t, x.f)

	_, err := x.f.Cut(x.A)
	assert.ErrorIs(t, err, eulertour.ErrAlreadyRoot)
	assert.Equal(t, before, snapshot(t, x.f))

	_, err = x.f.Cut(x.C)
	require.NoError(t, err)
	_, err = x.f.Cut(x.C)
	assert.ErrorIs(t, err, eulertour.ErrAlreadyRoot, "second cut of the same node")
}

func TestUnknownNode(t *testing.T) {
	x := linked(t)
	const missing eulertour.NodeID = 99

	assert.ErrorIs(t, x.f.Link(missing, x.A), eulertour.ErrNodeNotFound)
	assert.ErrorIs(t, x.f.Link(x.A, missing), eulertour.ErrNodeNotFound)
	assert.ErrorIs(t, x.f.SetValue(missing, "Z"), eulertour.ErrNodeNotFound)

	_, err := x.f.Cut(eulertour.NoNode)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.FindRoot(-1)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.Value(missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, _, err = x.f.Parent(missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.Children(missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.State(missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.Tour(missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.Connected(x.A, missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	_, err = x.f.ComponentSize(missing)
	assert.ErrorIs(t, err, eulertour.ErrNodeNotFound)
	assert.False(t, x.f.HasChild(missing, x.A))
}

func TestCut_SiblingBridges(t *testing.T) {
	x := newABCD(t)
	require.NoError(t, x.f.Link(x.B, x.A))
	require.NoError(t, x.f.Link(x.C, x.A))
	require.NoError(t, x.f.Link(x.D, x.A))
	require.Equal(t, []string{"A", "B", "A", "C", "A", "D", "A"}, tourOf(t, x.f, x.A))

	// Middle child: its bridge is an interior occurrence of A.
	_, err := x.f.Cut(x.C)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A", "D", "A"}, tourOf(t, x.f, x.A))

	// Last child: its bridge was last(A), which moves back.
	_, err = x.f.Cut(x.D)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, tourOf(t, x.f, x.A))

	// A fresh link lands after the new last(A).
	require.NoError(t, x.f.Link(x.C, x.A))
	assert.Equal(t, []string{"A", "B", "A", "C", "A"}, tourOf(t, x.f, x.A))

	_, err = x.f.Cut(x.B)
	require.NoError(t, err)
	_, err = x.f.Cut(x.C)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tourOf(t, x.f, x.A))
	assert.Equal(t, 4, x.f.Sequence().Len())
}

func TestLink_SubtreeUnderDeepNode(t *testing.T) {
	x := newABCD(t)
	require.NoError(t, x.f.Link(x.D, x.C)) // C-D
	require.NoError(t, x.f.Link(x.B, x.A)) // A-B
	require.NoError(t, x.f.Link(x.C, x.B)) // the C-D tree goes below B

	assert.Equal(t, []string{"A", "B", "C", "D", "C", "B", "A"}, tourOf(t, x.f, x.D))
	assert.Equal(t, x.A, rootOf(t, x.f, x.D))
}

func TestRoundTrip_LinkThenCut(t *testing.T) {
	f := eulertour.New[string](eulertour.WithVerify())

	// A 40 node tree built as a heap-shaped ternary tree.
	tree := make([]eulertour.NodeID, 40)
	for i := range tree {
		tree[i] = f.Add(fmt.Sprintf("t%d", i))
		if i > 0 {
			require.NoError(t, f.Link(tree[i], tree[(i-1)/3]))
		}
	}
	// A separate 6 node subtree.
	sub := make([]eulertour.NodeID, 6)
	for i := range sub {
		sub[i] = f.Add(fmt.Sprintf("s%d", i))
		if i > 0 {
			require.NoError(t, f.Link(sub[i], sub[i-1]))
		}
	}

	before := snapshot(t, f)
	occurrences := f.Sequence().Len()

	for _, v := range tree {
		require.NoError(t, f.Link(sub[0], v))
		assert.Equal(t, tree[0], rootOf(t, f, sub[5]))

		comp, err := f.Cut(sub[0])
		require.NoError(t, err)
		assert.Equal(t, sub[0], comp.Root)
		assert.Equal(t, sub[0], rootOf(t, f, sub[0]))
		assert.Equal(t, before, snapshot(t, f), "after link/cut under %d", v)
		assert.Equal(t, occurrences, f.Sequence().Len())
	}
}

func TestFindRoot_Idempotent(t *testing.T) {
	x := linked(t)
	before := snapshot(t, x.f)
	seqBefore, err := x.f.SequenceRoot(x.D)
	require.NoError(t, err)

	first := rootOf(t, x.f, x.D)
	second := rootOf(t, x.f, x.D)

	assert.Equal(t, first, second)
	assert.Equal(t, before, snapshot(t, x.f))
	seqAfter, err := x.f.SequenceRoot(x.D)
	require.NoError(t, err)
	assert.Equal(t, seqBefore, seqAfter)
}

func TestValue_SetValue(t *testing.T) {
	f := eulertour.New[int]()
	v := f.Add(7)

	got, err := f.Value(v)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	require.NoError(t, f.SetValue(v, 11))
	got, err = f.Value(v)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

func TestDeepChain_BalancedSequence(t *testing.T) {
	const n = 2000
	f := eulertour.New[int](eulertour.WithCapacity(n))
	ids := make([]eulertour.NodeID, n)
	for i := range ids {
		ids[i] = f.Add(i)
	}
	// Path 0-1-2-...-(n-1), linked bottom-up so every link joins two chains.
	for i := n - 1; i > 0; i-- {
		require.NoError(t, f.Link(ids[i], ids[i-1]))
	}
	require.NoError(t, f.Verify())

	r, err := f.FindRoot(ids[n-1])
	require.NoError(t, err)
	assert.Equal(t, ids[0], r)

	top, err := f.SequenceRoot(ids[0])
	require.NoError(t, err)
	seq := f.Sequence()
	assert.Equal(t, 2*n-1, seq.Size(top))
	assert.LessOrEqual(t, seq.Height(top), 2*bitLen(2*n))

	_, err = f.Cut(ids[n/2])
	require.NoError(t, err)
	require.NoError(t, f.Verify())
	r, err = f.FindRoot(ids[n-1])
	require.NoError(t, err)
	assert.Equal(t, ids[n/2], r)

	size, err := f.ComponentSize(ids[n-1])
	require.NoError(t, err)
	assert.Equal(t, n-n/2, size)
}

func TestOnRotate_Forwarded(t *testing.T) {
	rotations := 0
	f := eulertour.New[int](eulertour.WithOnRotate(func(avlseq.Handle, avlseq.Direction) {
		rotations++
	}))
	ids := make([]eulertour.NodeID, 32)
	for i := range ids {
		ids[i] = f.Add(i)
		if i > 0 {
			require.NoError(t, f.Link(ids[i], ids[0]))
		}
	}

	assert.Positive(t, rotations)
	assert.NoError(t, f.Verify())
}

func TestNodesAndRoots(t *testing.T) {
	x := linked(t)
	e := x.f.Add("E")

	assert.Equal(t, 5, x.f.Len())
	assert.Equal(t, []eulertour.NodeID{x.A, x.B, x.C, x.D, e}, x.f.Nodes())
	assert.Equal(t, []eulertour.NodeID{x.A, e}, x.f.Roots())
}

func bitLen(n int) int {
	l := 0
	for ; n > 0; n >>= 1 {
		l++
	}

	return l
}
