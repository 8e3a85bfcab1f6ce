// Package sat classifies formulas semantically with a SAT solver.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/debug"
)

type Verdict int

const (
	Contingent Verdict = iota
	Tautology
	Contradiction
)

func (v Verdict) String() string {
	s, ok := map[Verdict]string{
		Contingent:    "contingent",
		Tautology:     "tautology",
		Contradiction: "contradiction",
	}[v]
	if ok {
		return s
	}
	return "<unknown verdict>"
}

// builder turns formula trees into circuit literals, sharing one literal
// per variable name.
type builder struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newBuilder() *builder {
	return &builder{
		c:    logic.NewC(),
		vars: map[string]z.Lit{},
	}
}

func (b *builder) lit(n *ast.Node) z.Lit {
	switch n.Kind {
	case ast.VarKind:
		if l, ok := b.vars[n.Name]; ok {
			return l
		}
		l := b.c.Lit()
		b.vars[n.Name] = l
		return l
	case ast.NotKind:
		return b.lit(n.Child).Not()
	case ast.BinaryKind:
		left := b.lit(n.Left)
		right := b.lit(n.Right)
		switch n.Op {
		case ast.And:
			return b.c.Ands(left, right)
		case ast.Or:
			return b.c.Ors(left, right)
		case ast.Imp:
			return b.c.Ors(left.Not(), right)
		case ast.Bicond:
			return b.c.Ands(b.c.Ors(left.Not(), right), b.c.Ors(right.Not(), left))
		}
	}
	return b.c.F
}

// sat reports whether assuming f is satisfiable.
func (b *builder) sat(f z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(f)
	return g.Solve() == 1
}

// Classify returns the semantic status of n: true on every row, false on
// every row, or contingent.
func Classify(n *ast.Node) Verdict {
	b := newBuilder()
	f := b.lit(n)
	res := Contingent
	switch {
	case !b.sat(f.Not()):
		res = Tautology
	case !b.sat(f):
		res = Contradiction
	}
	if debug.Sat() {
		debug.Logf("classify %s: %s\n", debug.Formula{Node: n}, res)
	}
	return res
}

// Equivalent reports whether a and b have the same truth value under
// every assignment. Variables are shared by name across the two trees.
func Equivalent(a, b *ast.Node) bool {
	bld := newBuilder()
	fa := bld.lit(a)
	fb := bld.lit(b)
	differ := bld.c.Ors(bld.c.Ands(fa, fb.Not()), bld.c.Ands(fa.Not(), fb))
	return !bld.sat(differ)
}
