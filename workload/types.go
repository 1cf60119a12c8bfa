package workload

import (
	"errors"
	"fmt"
)

// ErrMismatch indicates the forest and the oracle disagreed during Replay.
var ErrMismatch = errors.New("workload: forest and oracle disagree")

// OpKind selects the operation an Op performs.
type OpKind uint8

const (
	// OpLink links U below V.
	OpLink OpKind = iota
	// OpCut cuts U from its parent. V is unused.
	OpCut
	// OpFindRoot queries the root of U. V is unused.
	OpFindRoot
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case OpLink:
		return "link"
	case OpCut:
		return "cut"
	case OpFindRoot:
		return "find-root"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Op is one workload step over node indices.
type Op struct {
	Kind OpKind
	U, V int
}

// String implements fmt.Stringer.
func (o Op) String() string {
	if o.Kind == OpLink {
		return fmt.Sprintf("link(%d, %d)", o.U, o.V)
	}

	return fmt.Sprintf("%s(%d)", o.Kind, o.U)
}

// Stats counts what Replay applied.
type Stats struct {
	Links    int // successful links
	Cuts     int // successful cuts
	Finds    int // find-root queries
	Rejected int // ops both sides rejected with the same error
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Links:    s.Links + o.Links,
		Cuts:     s.Cuts + o.Cuts,
		Finds:    s.Finds + o.Finds,
		Rejected: s.Rejected + o.Rejected,
	}
}

// Total is the number of ops counted.
func (s Stats) Total() int { return s.Links + s.Cuts + s.Finds + s.Rejected }

// Options configures a Generator.
type Options struct {
	// InvalidRate is the fraction of ops, in [0, 1], that are deliberately
	// invalid. Values outside the range are clamped.
	InvalidRate float64

	// LinkWeight, CutWeight and FindWeight set the relative mix of valid ops.
	LinkWeight int
	CutWeight  int
	FindWeight int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a mix of 45% links, 25% cuts, 30% find-root and no
// invalid ops.
func DefaultOptions() Options {
	return Options{
		InvalidRate: 0,
		LinkWeight:  45,
		CutWeight:   25,
		FindWeight:  30,
	}
}

// WithInvalidRate sets the fraction of deliberately invalid ops.
func WithInvalidRate(r float64) Option {
	return func(o *Options) {
		switch {
		case r < 0:
			r = 0
		case r > 1:
			r = 1
		}
		o.InvalidRate = r
	}
}

// WithMix sets the relative weights of valid links, cuts and find-root ops.
// Negative weights count as zero; an all-zero mix yields only find-root ops.
func WithMix(link, cut, find int) Option {
	return func(o *Options) {
		o.LinkWeight = max(link, 0)
		o.CutWeight = max(cut, 0)
		o.FindWeight = max(find, 0)
	}
}
