package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/notation"
	"github.com/truthtab/go-prop/parse"
)

func TestNew(t *testing.T) {
	n, err := parse.Parse("P & Q")
	if err != nil {
		t.Fatal(err)
	}
	tab := New(n)
	if d := cmp.Diff([]string{"P", "Q", "(P & Q)"}, tab.Headers(notation.ASCII)); d != "" {
		t.Errorf("headers (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"P", "Q", "(P ∧ Q)"}, tab.Headers(notation.Unicode)); d != "" {
		t.Errorf("headers (-want +got):\n%s", d)
	}
	wantRows := [][]bool{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	if len(tab.Rows) != len(wantRows) {
		t.Fatalf("got %d rows, want %d", len(tab.Rows), len(wantRows))
	}
	for r := range wantRows {
		if d := cmp.Diff(wantRows[r], tab.Row(r)); d != "" {
			t.Errorf("row %d (-want +got):\n%s", r, d)
		}
	}
}

// subformula columns are ordered so that a column's dependencies are
// atoms or strictly earlier columns
func TestColumnsLeftToRight(t *testing.T) {
	n, err := parse.Parse("(P & Q) -> ~R")
	if err != nil {
		t.Fatal(err)
	}
	tab := New(n)
	if len(tab.Subs) != 3 {
		t.Fatalf("got %d subformula columns, want 3", len(tab.Subs))
	}
	if tab.Subs[len(tab.Subs)-1] != n {
		t.Error("root is not the last column")
	}
	pos := map[*ast.Node]int{}
	for i, sub := range tab.Subs {
		pos[sub] = i
	}
	for i, sub := range tab.Subs {
		for _, child := range []*ast.Node{sub.Child, sub.Left, sub.Right} {
			if child == nil || child.Kind == ast.VarKind {
				continue
			}
			if pos[child] >= i {
				t.Errorf("column %d depends on column %d", i, pos[child])
			}
		}
	}
}

func TestCellsMatchEval(t *testing.T) {
	n, err := parse.Parse("~P v (Q <-> R)")
	if err != nil {
		t.Fatal(err)
	}
	tab := New(n)
	if len(tab.Rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(tab.Rows))
	}
	rootCol := len(tab.Subs) - 1
	for r := range tab.Rows {
		rowVals := tab.Row(r)
		if rowVals[len(tab.Atoms)+rootCol] != tab.Cells[r][rootCol] {
			t.Errorf("row %d: Row and Cells disagree", r)
		}
	}
}
