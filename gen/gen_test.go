package gen

import (
	"slices"
	"testing"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/encode"
	"github.com/truthtab/go-prop/parse"
)

// generated formulas always re-parse and re-print identically
func TestGenerateRoundTrip(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		s := Generate(Seed(seed))
		n, err := parse.Parse(s)
		if err != nil {
			t.Fatalf("seed %d: Parse(%q): %v", seed, s, err)
		}
		if got := encode.Unicode(n); got != s {
			t.Errorf("seed %d: reprint %q != %q", seed, got, s)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(Seed(42))
	b := Generate(Seed(42))
	if a != b {
		t.Errorf("same seed, different formulas: %q %q", a, b)
	}
}

func TestNodeAtomsWithinPool(t *testing.T) {
	pool := []string{"A", "B"}
	for seed := uint64(0); seed < 50; seed++ {
		n := Node(Seed(seed), Pool(pool...), AtomCounts(2))
		for _, atom := range ast.Atoms(n) {
			if !slices.Contains(pool, atom) {
				t.Errorf("seed %d: atom %s outside pool", seed, atom)
			}
		}
	}
}

func TestNodeDepthBound(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		n := Node(Seed(seed), Depths(2))
		if d := depth(n); d > 2 {
			t.Errorf("seed %d: depth %d exceeds bound 2", seed, d)
		}
	}
}

// with negation probability 1 every non-leaf step is a negation
func TestNegationProb(t *testing.T) {
	n := Node(Seed(7), NegationProb(1), Depths(3))
	for cur := n; cur.Kind != ast.VarKind; cur = cur.Child {
		if cur.Kind != ast.NotKind {
			t.Fatalf("expected chain of negations, got %v", cur.Kind)
		}
	}
}

// out-of-range option values are clamped, never panic
func TestOptionClamping(t *testing.T) {
	n := Node(Seed(1), AtomCounts(9))
	pool := []string{"P", "Q", "R", "S"}
	for _, atom := range ast.Atoms(n) {
		if !slices.Contains(pool, atom) {
			t.Errorf("atom %s outside default pool", atom)
		}
	}
	n = Node(Seed(1), AtomCounts(0))
	if got := ast.Atoms(n); len(got) != 1 || got[0] != "P" {
		t.Errorf("atom count 0: got atoms %v, want [P]", got)
	}
	n = Node(Seed(1), Depths(-1))
	if n.Kind != ast.VarKind {
		t.Errorf("depth -1: got kind %s, want Var", n.Kind)
	}
	for seed := uint64(0); seed < 20; seed++ {
		s := Generate(Seed(seed), Pool(), AtomCounts(), Depths())
		if _, err := parse.Parse(s); err != nil {
			t.Errorf("seed %d: Parse(%q): %v", seed, s, err)
		}
	}
}

func TestNodeIDs(t *testing.T) {
	n := Node(Seed(3))
	seen := map[int]bool{}
	n.Visit(func(nn *ast.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if nn.ID <= 0 || seen[nn.ID] {
			t.Errorf("bad or duplicate id %d", nn.ID)
		}
		seen[nn.ID] = true
		return true, nil
	})
}

func depth(n *ast.Node) int {
	switch n.Kind {
	case ast.VarKind:
		return 0
	case ast.NotKind:
		return 1 + depth(n.Child)
	default:
		return 1 + max(depth(n.Left), depth(n.Right))
	}
}
