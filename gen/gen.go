// Package gen produces random well-formed formulas.
package gen

import (
	"math/rand/v2"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/debug"
	"github.com/truthtab/go-prop/encode"
)

type genOpts struct {
	pool       []string
	atomCounts []int
	depths     []int
	negProb    float64
	rand       *rand.Rand
}

type Option func(*genOpts)

// Pool sets the ordered pool of variable names from which the active
// atoms are drawn.
func Pool(names ...string) Option {
	return func(o *genOpts) { o.pool = names }
}

// AtomCounts sets the candidate pool sizes, one of which is chosen
// uniformly per formula.
func AtomCounts(counts ...int) Option {
	return func(o *genOpts) { o.atomCounts = counts }
}

// Depths sets the candidate maximum recursion depths, one of which is
// chosen uniformly per formula.
func Depths(depths ...int) Option {
	return func(o *genOpts) { o.depths = depths }
}

// NegationProb sets the probability of choosing negation over a binary
// connective at each non-leaf step.
func NegationProb(p float64) Option {
	return func(o *genOpts) { o.negProb = p }
}

// Source sets the random source, for reproducible generation.
func Source(r *rand.Rand) Option {
	return func(o *genOpts) { o.rand = r }
}

// Seed is shorthand for Source with a PCG seeded from s.
func Seed(s uint64) Option {
	return Source(rand.New(rand.NewPCG(s, s)))
}

func defaultOpts() *genOpts {
	return &genOpts{
		pool:       []string{"P", "Q", "R", "S"},
		atomCounts: []int{2, 3},
		depths:     []int{1, 2, 3},
		negProb:    0.3,
	}
}

// Generate returns the Unicode surface form of a random well-formed
// formula. The result always re-parses successfully and re-prints
// identically, since it is rendered from a valid tree.
func Generate(opts ...Option) string {
	return encode.Unicode(Node(opts...))
}

// Node returns a random formula tree. Node identities are assigned in
// construction order from a counter owned by this call, as in parse.
// Option values that fall outside their valid range are clamped: atom
// counts to [1, len(pool)], depths to at least 0; empty pools or
// candidate lists revert to the defaults.
func Node(opts ...Option) *ast.Node {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	sanitize(o)
	if o.rand == nil {
		o.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	count := min(max(choose(o.rand, o.atomCounts), 1), len(o.pool))
	g := &generator{
		opts: o,
		pool: o.pool[:count],
	}
	n := g.build(max(choose(o.rand, o.depths), 0))
	if debug.Gen() {
		debug.Logf("generated %s\n", debug.Formula{Node: n})
	}
	return n
}

// sanitize backfills empty option fields with defaults; option values
// can arrive from yaml config files as well as code.
func sanitize(o *genOpts) {
	def := defaultOpts()
	if len(o.pool) == 0 {
		o.pool = def.pool
	}
	if len(o.atomCounts) == 0 {
		o.atomCounts = def.atomCounts
	}
	if len(o.depths) == 0 {
		o.depths = def.depths
	}
}

type generator struct {
	opts *genOpts
	pool []string
	ids  ast.IDs
}

func (g *generator) build(depth int) *ast.Node {
	r := g.opts.rand
	if depth == 0 {
		return ast.NewVar(&g.ids, g.pool[r.IntN(len(g.pool))])
	}
	if r.Float64() < g.opts.negProb {
		return ast.NewNot(&g.ids, g.build(depth-1))
	}
	ops := ast.Ops()
	op := ops[r.IntN(len(ops))]
	left := g.build(depth - 1)
	right := g.build(depth - 1)
	return ast.NewBinary(&g.ids, op, left, right)
}

func choose(r *rand.Rand, from []int) int {
	return from[r.IntN(len(from))]
}
