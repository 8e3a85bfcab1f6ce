package sat

import (
	"testing"

	"github.com/truthtab/go-prop/parse"
)

type classifyTest struct {
	in   string
	want Verdict
}

func TestClassify(t *testing.T) {
	cts := []classifyTest{
		{in: "P v ~P", want: Tautology},
		{in: "P -> P", want: Tautology},
		{in: "(P & Q) -> P", want: Tautology},
		{in: "P <-> ~~P", want: Tautology},
		{in: "P & ~P", want: Contradiction},
		{in: "P <-> ~P", want: Contradiction},
		{in: "P", want: Contingent},
		{in: "P -> Q", want: Contingent},
		{in: "P & Q v R", want: Contingent},
	}
	for _, ct := range cts {
		n, err := parse.Parse(ct.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", ct.in, err)
		}
		if got := Classify(n); got != ct.want {
			t.Errorf("Classify(%q): got %s want %s", ct.in, got, ct.want)
		}
	}
}

type equivTest struct {
	a, b string
	want bool
}

func TestEquivalent(t *testing.T) {
	ets := []equivTest{
		{a: "P -> Q", b: "~P v Q", want: true},
		{a: "~(P & Q)", b: "~P v ~Q", want: true},
		{a: "P <-> Q", b: "(P -> Q) & (Q -> P)", want: true},
		// left- vs right-associated chains of implication differ
		{a: "P -> Q -> R", b: "P -> (Q -> R)", want: false},
		{a: "P", b: "Q", want: false},
		{a: "P & Q", b: "P v Q", want: false},
	}
	for _, et := range ets {
		a, err := parse.Parse(et.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", et.a, err)
		}
		b, err := parse.Parse(et.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", et.b, err)
		}
		if got := Equivalent(a, b); got != et.want {
			t.Errorf("Equivalent(%q, %q): got %v want %v", et.a, et.b, got, et.want)
		}
	}
}
