package ast

import (
	"fmt"
	"maps"
	"slices"
)

type Kind int

const (
	VarKind Kind = iota
	NotKind
	BinaryKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		VarKind:    "Var",
		NotKind:    "Not",
		BinaryKind: "Binary",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Var":    VarKind,
		"Not":    NotKind,
		"Binary": BinaryKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{VarKind, NotKind, BinaryKind}
}

// Op is a binary connective.
type Op int

const (
	And Op = iota
	Or
	Imp
	Bicond
)

func (op Op) String() string {
	s, ok := map[Op]string{
		And:    "And",
		Or:     "Or",
		Imp:    "Imp",
		Bicond: "Bicond",
	}[op]
	if ok {
		return s
	}
	return "<unknown op>"
}

func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

func (op *Op) UnmarshalText(d []byte) error {
	o, ok := map[string]Op{
		"And":    And,
		"Or":     Or,
		"Imp":    Imp,
		"Bicond": Bicond,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized op %q", d)
	}
	*op = o
	return nil
}

func Ops() []Op {
	return []Op{And, Or, Imp, Bicond}
}

// IDs hands out node identities for one parse or generation call. The
// zero value is ready to use; the first ID is 1.
type IDs struct {
	next int
}

func (ids *IDs) Next() int {
	ids.next++
	return ids.next
}

// Node is one node of a formula tree, see the package documentation for
// the structure constraints per Kind.
type Node struct {
	ID   int
	Kind Kind

	Name string // VarKind

	Child *Node // NotKind

	Op    Op    // BinaryKind
	Left  *Node // BinaryKind
	Right *Node // BinaryKind
}

func NewVar(ids *IDs, name string) *Node {
	return &Node{ID: ids.Next(), Kind: VarKind, Name: name}
}

func NewNot(ids *IDs, child *Node) *Node {
	return &Node{ID: ids.Next(), Kind: NotKind, Child: child}
}

func NewBinary(ids *IDs, op Op, left, right *Node) *Node {
	return &Node{ID: ids.Next(), Kind: BinaryKind, Op: op, Left: left, Right: right}
}

// Visit walks the tree in depth first order, calling f twice per node,
// once before its children with isPost false and once after with isPost
// true. Returning false from a pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		switch n.Kind {
		case VarKind:
		case NotKind:
			if err := n.Child.Visit(f); err != nil {
				return err
			}
		case BinaryKind:
			if err := n.Left.Visit(f); err != nil {
				return err
			}
			if err := n.Right.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Atoms returns the distinct variable names appearing in the formula,
// sorted ascending.
func Atoms(n *Node) []string {
	set := map[string]bool{}
	n.Visit(func(nn *Node, isPost bool) (bool, error) {
		if !isPost && nn.Kind == VarKind {
			set[nn.Name] = true
		}
		return true, nil
	})
	return slices.Sorted(maps.Keys(set))
}
