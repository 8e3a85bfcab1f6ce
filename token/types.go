// Package token provides lexical analysis for propositional formulas.
//
// Each connective has two accepted spellings, one ASCII and one Unicode:
//
//	negation       ~  ¬
//	conjunction    &  ∧
//	disjunction    v  ∨   (also accepts uppercase V)
//	implication    -> →
//	biconditional  <-> ↔
//
// Variables are single uppercase ASCII letters. The letter V is claimed by
// disjunction and is not available as a variable name.
package token

import "fmt"

type TokenType int

const (
	TVar TokenType = iota
	TLParen
	TRParen
	TNot
	TAnd
	TOr
	TImp
	TBicond
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TVar:    "TVar",
		TLParen: "TLParen",
		TRParen: "TRParen",
		TNot:    "TNot",
		TAnd:    "TAnd",
		TOr:     "TOr",
		TImp:    "TImp",
		TBicond: "TBicond",
	}[t]
}

// Token is one lexeme of a formula. Tokens are immutable values and carry
// no position information beyond their order of emission; Name is set only
// for TVar.
type Token struct {
	Type TokenType
	Name string
}

func (t Token) String() string {
	if t.Type == TVar {
		return fmt.Sprintf("%s(%s)", t.Type, t.Name)
	}
	return t.Type.String()
}

// LexError reports a character the lexer does not recognize, with its
// byte offset in the input.
type LexError struct {
	Rune   rune
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized character %q at offset %d", e.Rune, e.Offset)
}
