package grammar

import (
	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the character-level edits taking the normalized raw input
// to the normalized canonical form of n. With Check true, the edits are
// (almost always) the parentheses the input left implicit.
func Diff(raw string, n *ast.Node) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	return diffCfg.DiffMain(Normalize(raw), Normalize(encode.Ascii(n)), false)
}
