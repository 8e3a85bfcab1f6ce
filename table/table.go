// Package table assembles full truth tables from formula trees.
package table

import (
	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/encode"
	"github.com/truthtab/go-prop/eval"
	"github.com/truthtab/go-prop/notation"
)

// Table is the precomputed truth table of one formula. Atom columns come
// first, sorted alphabetically; subformula columns follow in post-order,
// dependencies before dependents, so the table can be filled strictly
// left to right. Rows run from all-true to all-false as in
// eval.AllAssignments.
type Table struct {
	Root  *ast.Node
	Atoms []string
	Subs  []*ast.Node
	Rows  []eval.Assignment

	// Cells[r][c] is the value of Subs[c] under Rows[r].
	Cells [][]bool
}

// New builds the table for n.
func New(n *ast.Node) *Table {
	t := &Table{
		Root:  n,
		Atoms: ast.Atoms(n),
		Subs:  ast.Subformulas(n),
	}
	t.Rows = eval.AllAssignments(t.Atoms)
	t.Cells = make([][]bool, len(t.Rows))
	for r, a := range t.Rows {
		cells := make([]bool, len(t.Subs))
		for c, sub := range t.Subs {
			cells[c] = eval.Eval(sub, a)
		}
		t.Cells[r] = cells
	}
	return t
}

// Headers returns the column labels: atom names, then the rendered
// subformulas in the given notation.
func (t *Table) Headers(nt notation.Notation) []string {
	res := make([]string, 0, len(t.Atoms)+len(t.Subs))
	res = append(res, t.Atoms...)
	for _, sub := range t.Subs {
		res = append(res, encode.String(sub, nt))
	}
	return res
}

// Row returns row r as booleans in column order, atoms then subformulas.
func (t *Table) Row(r int) []bool {
	res := make([]bool, 0, len(t.Atoms)+len(t.Subs))
	a := t.Rows[r]
	for _, atom := range t.Atoms {
		res = append(res, a[atom])
	}
	return append(res, t.Cells[r]...)
}
