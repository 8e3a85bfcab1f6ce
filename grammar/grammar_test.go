package grammar

import (
	"testing"

	"github.com/truthtab/go-prop/parse"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type checkTest struct {
	in   string
	warn bool
}

func TestCheck(t *testing.T) {
	cts := []checkTest{
		{in: "P", warn: false},
		{in: "~P", warn: false},
		{in: "(P & Q)", warn: false},
		// whitespace and spelling do not matter
		{in: "(P&Q)", warn: false},
		{in: "( P ∧ Q )", warn: false},
		{in: "(P ∨ Q)", warn: false},
		{in: "(P V Q)", warn: false},
		{in: "¬(P → Q)", warn: false},
		{in: "((P & Q) v R)", warn: false},
		// precedence did the grouping: warn
		{in: "P & Q", warn: true},
		{in: "P & Q v R", warn: true},
		{in: "P -> Q -> R", warn: true},
		// redundant parentheses also deviate from canonical form
		{in: "(P)", warn: true},
		{in: "((P & Q))", warn: true},
	}
	for _, ct := range cts {
		n, err := parse.Parse(ct.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", ct.in, err)
		}
		if got := Check(ct.in, n); got != ct.warn {
			t.Errorf("Check(%q): got %v want %v", ct.in, got, ct.warn)
		}
	}
}

func TestNormalize(t *testing.T) {
	in := " ¬( P ∧ Q ) → R ↔ S ∨ T "
	want := "~(P&Q)->R<->SvT"
	if got := Normalize(in); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

// for precedence-grouped input the diff is exactly the missing
// parentheses
func TestDiff(t *testing.T) {
	in := "P & Q v R"
	n, err := parse.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	diffs := Diff(in, n)
	for _, d := range diffs {
		if d.Type == diffpatch.DiffEqual {
			continue
		}
		if d.Type == diffpatch.DiffDelete {
			t.Errorf("unexpected delete %q", d.Text)
			continue
		}
		for _, r := range d.Text {
			if r != '(' && r != ')' {
				t.Errorf("insert %q is not parentheses", d.Text)
			}
		}
	}
}
