// Package grammar implements the grammaticality check.
//
// A formula that parses only because operator precedence inserted or
// removed parentheses is accepted, but the student should have written
// the parentheses out. The check is purely string-level: the raw input
// and the canonical ASCII rendering of the parsed tree are normalized to
// one token alphabet and compared. A mismatch flags the advisory warning;
// it is not an error path.
package grammar

import (
	"strings"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/encode"
)

var normalizer = strings.NewReplacer(
	" ", "",
	"\t", "",
	"\n", "",
	"\r", "",
	"¬", "~",
	"∧", "&",
	"∨", "v",
	"V", "v",
	"→", "->",
	"↔", "<->",
)

// Normalize strips whitespace and maps every accepted connective
// spelling to its canonical ASCII symbol.
func Normalize(s string) string {
	return normalizer.Replace(s)
}

// Check reports whether raw relied on precedence rather than explicit
// parenthesization to parse as n. True means the pedagogical warning
// should be shown.
func Check(raw string, n *ast.Node) bool {
	return Normalize(raw) != Normalize(encode.Ascii(n))
}
