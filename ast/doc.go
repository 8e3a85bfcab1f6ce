// Package ast defines the formula tree for propositional logic.
//
// # Overview
//
// All formulas (whether parsed from text or generated randomly) are
// represented as trees of ast.Node. The tree is a tagged variant: the Kind
// field says whether a node is an atomic variable, a negation, or a binary
// connective, and the remaining fields are populated accordingly.
//
// # Node Structure
//
// A Node is one of:
//
//   - VarKind: an atomic variable; Name holds a single uppercase letter.
//   - NotKind: a negation; Child holds the negated subformula.
//   - BinaryKind: a binary connective; Op is one of And, Or, Imp, Bicond
//     and Left/Right hold the operands.
//
// Trees are finite and acyclic. Each non-root node is owned by exactly one
// parent; subtrees are never shared between nodes.
//
// # Identity
//
// Every node carries an ID, assigned at construction time from an IDs
// counter owned by the constructing call (the parser or the generator).
// IDs are used to correlate a node across derived views, such as the
// subformula column order of a truth table. They are not a notion of
// equality: two syntactically identical subformulas constructed separately
// have distinct IDs. Use Equal or Compare for structural equality.
//
// # Derived Views
//
// Atoms returns the sorted set of distinct variable names in a formula.
// Subformulas returns the non-atomic nodes in post-order, children before
// parents; this order is the column order of a truth table.
//
// # Related Packages
//
//   - github.com/truthtab/go-prop/parse - parses text into ast.Node trees
//   - github.com/truthtab/go-prop/encode - renders ast.Node trees to text
//   - github.com/truthtab/go-prop/eval - evaluates trees under assignments
//   - github.com/truthtab/go-prop/table - assembles full truth tables
package ast
