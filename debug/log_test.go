package debug

import (
	"testing"

	"github.com/truthtab/go-prop/ast"
)

// Formula must satisfy fmt.Stringer so printf checkers accept it under
// the %s verb.
func TestFormulaString(t *testing.T) {
	var ids ast.IDs
	n := ast.NewBinary(&ids, ast.And,
		ast.NewVar(&ids, "P"),
		ast.NewNot(&ids, ast.NewVar(&ids, "Q")))
	if got, want := (Formula{Node: n}).String(), "(P ∧ ¬Q)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
