package ast

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two formula trees structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b. IDs are
// ignored: two separately constructed copies of the same formula compare
// equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.Kind), rank(b.Kind)); c != 0 {
		return c
	}
	switch a.Kind {
	case VarKind:
		return strings.Compare(a.Name, b.Name)
	case NotKind:
		return Compare(a.Child, b.Child)
	case BinaryKind:
		if c := cmp.Compare(a.Op, b.Op); c != 0 {
			return c
		}
		if c := Compare(a.Left, b.Left); c != 0 {
			return c
		}
		return Compare(a.Right, b.Right)
	}
	return 0
}

// Equal reports whether a and b are structurally equal, ignoring IDs.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Var < Not < Binary
func rank(k Kind) int {
	switch k {
	case VarKind:
		return 0
	case NotKind:
		return 1
	case BinaryKind:
		return 2
	}
	return 100
}
