// Package parse builds formula trees from text.
//
// The grammar, binding tightest to loosest:
//
//	Primary := VAR | '(' Bicond ')'
//	Unary   := NOT Unary | Primary
//	And     := Unary (AND Unary)*
//	Or      := And (OR And)*
//	Imp     := Or (IMP Or)*
//	Bicond  := Imp (BICOND Imp)*
//
// All binary connectives are left-associative, including implication and
// the biconditional: P -> Q -> R parses as (P -> Q) -> R. Logic texts
// commonly treat chained implication as right-associative; the
// left-associative reading is kept deliberately so that canonical
// renderings of existing formulas never change.
//
// A parse either consumes the whole token stream or fails; leftover
// tokens after a complete top-level formula are an error, not a warning.
package parse
