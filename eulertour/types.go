package eulertour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eulerforest/avlseq"
)

// Sentinel errors for forest operations.
var (
	// ErrNodeNotFound indicates an operation referenced a NodeID this forest never issued.
	ErrNodeNotFound = errors.New("eulertour: node not found")

	// ErrAlreadyAttached indicates Link was asked to attach a node that already has a parent.
	ErrAlreadyAttached = errors.New("eulertour: node already attached")

	// ErrAlreadyRoot indicates Cut was asked to detach a node that has no parent.
	ErrAlreadyRoot = errors.New("eulertour: node is already a root")

	// ErrWouldCreateCycle indicates Link was asked to join two nodes of the same tree.
	ErrWouldCreateCycle = errors.New("eulertour: link would create a cycle")

	// ErrInvariant indicates Verify found the forest or its sequence inconsistent.
	ErrInvariant = errors.New("eulertour: invariant violated")
)

// NodeID identifies a forest node. The zero value NoNode is never issued.
type NodeID int32

// NoNode is the absent node.
const NoNode NodeID = 0

// State is the lifecycle state of a forest node.
type State int

const (
	// Root marks a node without a parent.
	Root State = iota
	// Attached marks a node linked below a parent.
	Attached
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Root:
		return "ROOT"
	case Attached:
		return "ATTACHED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Component is a tree detached by Cut: its forest root and the root of its
// occurrence sequence.
type Component struct {
	Root     NodeID
	Sequence avlseq.Handle
}

// Options configures a Forest.
type Options struct {
	// OnRotate, if non-nil, is forwarded to the occurrence sequence and called
	// after every single rotation.
	OnRotate func(pivot avlseq.Handle, dir avlseq.Direction)

	// Verify runs Forest.Verify after every successful mutation and panics on
	// the first violation. Intended for tests and debugging only: it makes
	// every mutation O(n).
	Verify bool

	// Capacity pre-sizes the node arena.
	Capacity int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with no hook, no self-checking and no preallocation.
func DefaultOptions() Options {
	return Options{
		OnRotate: nil,
		Verify:   false,
		Capacity: 0,
	}
}

// WithOnRotate installs a rotation hook on the underlying sequence.
func WithOnRotate(fn func(pivot avlseq.Handle, dir avlseq.Direction)) Option {
	return func(o *Options) {
		o.OnRotate = fn
	}
}

// WithVerify enables full invariant checking after every mutation.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithCapacity pre-sizes the forest for n nodes. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// forestNode is one arena slot of the represented forest.
type forestNode[T any] struct {
	value    T
	parent   NodeID
	children map[NodeID]struct{} // nil until the first child is linked
	first    avlseq.Handle
	last     avlseq.Handle
}

// Forest is a dynamic forest backed by Euler tours in one occurrence arena.
type Forest[T any] struct {
	seq   *avlseq.Sequence
	nodes []forestNode[T] // nodes[0] is the NoNode slot
	opts  Options
}

// New returns an empty Forest.
func New[T any](opts ...Option) *Forest[T] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	seqOpts := []avlseq.Option{avlseq.WithCapacity(2 * o.Capacity)}
	if o.OnRotate != nil {
		seqOpts = append(seqOpts, avlseq.WithOnRotate(o.OnRotate))
	}

	return &Forest[T]{
		seq:   avlseq.New(seqOpts...),
		nodes: make([]forestNode[T], 1, o.Capacity+1),
		opts:  o,
	}
}
