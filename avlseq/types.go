package avlseq

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates that Verify found a cached field or back-reference
// inconsistent with the actual tree shape.
var ErrCorrupt = errors.New("avlseq: corrupt sequence")

// Handle addresses one occurrence inside a Sequence arena.
// The zero value is Nil and never refers to a live occurrence.
type Handle int32

// Nil is the absent handle (no child, no parent, empty sequence).
const Nil Handle = 0

// Direction names the side of a single rotation.
type Direction int8

const (
	// RotLeft lifts the right child of the pivot.
	RotLeft Direction = iota
	// RotRight lifts the left child of the pivot.
	RotRight
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case RotLeft:
		return "left"
	case RotRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// occurrence is one arena slot.
type occurrence struct {
	left   Handle
	right  Handle
	parent Handle

	height  int // -1 is reserved for Nil, a leaf has height 0
	balance int // height(left) - height(right)
	size    int // occurrences in this subtree

	owner int  // opaque value supplied by NewOccurrence
	live  bool // false for Nil and released slots
}

// Options configures a Sequence.
type Options struct {
	// OnRotate, if non-nil, is invoked after every single rotation with the
	// occurrence the rotation was performed around.
	OnRotate func(pivot Handle, dir Direction)

	// Capacity pre-sizes the arena.
	Capacity int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with no hook and no preallocation.
func DefaultOptions() Options {
	return Options{
		OnRotate: nil,
		Capacity: 0,
	}
}

// WithOnRotate installs a rotation hook.
func WithOnRotate(fn func(pivot Handle, dir Direction)) Option {
	return func(o *Options) {
		o.OnRotate = fn
	}
}

// WithCapacity pre-sizes the arena for n occurrences. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// Sequence is an arena of occurrences forming any number of disjoint
// position-ordered AVL trees.
type Sequence struct {
	nodes []occurrence // nodes[0] is the Nil slot
	free  []Handle     // released slots, reused LIFO
	live  int          // allocated and not released
	opts  Options
}

// New returns an empty Sequence arena.
func New(opts ...Option) *Sequence {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Sequence{
		nodes: make([]occurrence, 1, o.Capacity+1),
		opts:  o,
	}

	return s
}
