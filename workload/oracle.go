package workload

import "github.com/katalvlaran/eulerforest/eulertour"

// Oracle is a naive rooted forest over indices [0, n): a parent array where
// -1 marks a root. It reports the same sentinel errors as eulertour.Forest,
// checked in the same order.
type Oracle struct {
	parent []int
}

// NewOracle returns n isolated roots.
func NewOracle(n int) *Oracle {
	o := &Oracle{parent: make([]int, n)}
	for i := range o.parent {
		o.parent[i] = -1
	}

	return o
}

// Len returns the number of nodes.
func (o *Oracle) Len() int { return len(o.parent) }

// Parent returns v's parent, or -1 for a root or unknown index.
func (o *Oracle) Parent(v int) int {
	if !o.has(v) {
		return -1
	}

	return o.parent[v]
}

// FindRoot climbs from v to its root.
func (o *Oracle) FindRoot(v int) (int, error) {
	if !o.has(v) {
		return -1, eulertour.ErrNodeNotFound
	}
	for o.parent[v] != -1 {
		v = o.parent[v]
	}

	return v, nil
}

// Link makes child a child of parent.
func (o *Oracle) Link(child, parent int) error {
	if !o.has(child) || !o.has(parent) {
		return eulertour.ErrNodeNotFound
	}
	if o.parent[child] != -1 {
		return eulertour.ErrAlreadyAttached
	}
	// child is a root, so a cycle means parent descends from child.
	if r, _ := o.FindRoot(parent); r == child {
		return eulertour.ErrWouldCreateCycle
	}
	o.parent[child] = parent

	return nil
}

// Cut detaches v from its parent.
func (o *Oracle) Cut(v int) error {
	if !o.has(v) {
		return eulertour.ErrNodeNotFound
	}
	if o.parent[v] == -1 {
		return eulertour.ErrAlreadyRoot
	}
	o.parent[v] = -1

	return nil
}

func (o *Oracle) has(v int) bool { return v >= 0 && v < len(o.parent) }
