// Package encode renders formula trees to text.
//
// The two renderers differ only in the connective glyph table: ASCII
// (~ & v -> <->) and Unicode (¬ ∧ ∨ → ↔). Output is total, deterministic
// and fully parenthesized: every binary node is rendered as
// "(left OP right)" regardless of precedence, and negation as a bare
// prefix. Full parenthesization is what makes the ASCII rendering usable
// as the canonical form for the grammaticality check in package grammar.
package encode
