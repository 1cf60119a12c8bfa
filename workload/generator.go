package workload

import "github.com/taylorza/go-lfsr"

// maxTries bounds the random probes for a node with a wanted property before
// the generator falls back to a find-root.
const maxTries = 8

// Generator produces a reproducible stream of Ops over nodes [0, n). It tracks
// the forest its own ops build in an Oracle, so valid ops stay valid when
// replayed in order from an all-roots forest.
type Generator struct {
	rng    interface{ Next() (uint32, bool) }
	oracle *Oracle
	opts   Options
}

// NewGenerator returns a Generator over nodes indices seeded with seed. A zero
// seed is replaced by 1, since an LFSR never leaves the all-zero state. nodes
// below 1 is treated as 1.
func NewGenerator(nodes int, seed uint32, opts ...Option) *Generator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if seed == 0 {
		seed = 1
	}
	if nodes < 1 {
		nodes = 1
	}

	return &Generator{
		rng:    lfsr.NewLfsr32(seed),
		oracle: NewOracle(nodes),
		opts:   o,
	}
}

// Nodes returns the number of node indices the generator draws from.
func (g *Generator) Nodes() int { return g.oracle.Len() }

// Ops returns the next count ops.
func (g *Generator) Ops(count int) []Op {
	out := make([]Op, count)
	for i := range out {
		out[i] = g.Next()
	}

	return out
}

// Next returns the next op and applies it to the generator's oracle.
func (g *Generator) Next() Op {
	var op Op
	if g.opts.InvalidRate > 0 && float64(g.draw()%1_000_000) < g.opts.InvalidRate*1_000_000 {
		op = g.invalid()
	} else {
		op = g.valid()
	}

	// Invalid ops are rejected here exactly as the forest will reject them.
	switch op.Kind {
	case OpLink:
		_ = g.oracle.Link(op.U, op.V)
	case OpCut:
		_ = g.oracle.Cut(op.U)
	}

	return op
}

func (g *Generator) valid() Op {
	o := g.opts
	total := o.LinkWeight + o.CutWeight + o.FindWeight
	if total == 0 {
		return g.find()
	}
	pick := g.intn(total)
	switch {
	case pick < o.LinkWeight:
		if op, ok := g.link(); ok {
			return op
		}
	case pick < o.LinkWeight+o.CutWeight:
		if v, ok := g.attached(); ok {
			return Op{Kind: OpCut, U: v}
		}
	}

	return g.find()
}

// link picks a root and a node of a different tree.
func (g *Generator) link() (Op, bool) {
	u, _ := g.oracle.FindRoot(g.intn(g.Nodes()))
	for i := 0; i < maxTries; i++ {
		v := g.intn(g.Nodes())
		if r, _ := g.oracle.FindRoot(v); r != u {
			return Op{Kind: OpLink, U: u, V: v}, true
		}
	}

	return Op{}, false
}

func (g *Generator) find() Op {
	return Op{Kind: OpFindRoot, U: g.intn(g.Nodes())}
}

// invalid returns an op the forest must reject.
func (g *Generator) invalid() Op {
	n := g.Nodes()
	switch g.intn(4) {
	case 0:
		// unknown node
		if g.intn(2) == 0 {
			return Op{Kind: OpCut, U: n + g.intn(n)}
		}
		return Op{Kind: OpLink, U: g.intn(n), V: -1 - g.intn(n)}
	case 1:
		// root below its own descendant
		if v, ok := g.attached(); ok {
			r, _ := g.oracle.FindRoot(v)
			return Op{Kind: OpLink, U: r, V: v}
		}
	case 2:
		// second parent
		if v, ok := g.attached(); ok {
			return Op{Kind: OpLink, U: v, V: g.intn(n)}
		}
	}
	// cut of a root
	r, _ := g.oracle.FindRoot(g.intn(n))

	return Op{Kind: OpCut, U: r}
}

// attached probes for a node with a parent.
func (g *Generator) attached() (int, bool) {
	for i := 0; i < maxTries; i++ {
		v := g.intn(g.Nodes())
		if g.oracle.Parent(v) != -1 {
			return v, true
		}
	}

	return 0, false
}

func (g *Generator) intn(n int) int { return int(g.draw() % uint32(n)) }

// draw returns the next LFSR state. The sequence wraps after 2^32-1 draws and
// simply repeats.
func (g *Generator) draw() uint32 {
	v, _ := g.rng.Next()
	return v
}
