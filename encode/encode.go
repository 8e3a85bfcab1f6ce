package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/notation"
)

var asciiOps = map[ast.Op]string{
	ast.And:    "&",
	ast.Or:     "v",
	ast.Imp:    "->",
	ast.Bicond: "<->",
}

var unicodeOps = map[ast.Op]string{
	ast.And:    "∧",
	ast.Or:     "∨",
	ast.Imp:    "→",
	ast.Bicond: "↔",
}

// OpGlyph returns the spelling of op in the given notation.
func OpGlyph(op ast.Op, nt notation.Notation) string {
	if nt.IsASCII() {
		return asciiOps[op]
	}
	return unicodeOps[op]
}

// NotGlyph returns the spelling of negation in the given notation.
func NotGlyph(nt notation.Notation) string {
	if nt.IsASCII() {
		return "~"
	}
	return "¬"
}

type EncState struct {
	notation notation.Notation
	Color    func(ColorAttr, string) string
}

// Encode writes the rendering of n to w.
func Encode(n *ast.Node, w io.Writer, opts ...Option) error {
	es := &EncState{notation: notation.Unicode}
	for _, opt := range opts {
		opt(es)
	}
	return encode(n, w, es)
}

// String returns the rendering of n in the given notation.
func String(n *ast.Node, nt notation.Notation) string {
	var sb strings.Builder
	encode(n, &sb, &EncState{notation: nt})
	return sb.String()
}

// Ascii returns the canonical ASCII rendering of n.
func Ascii(n *ast.Node) string {
	return String(n, notation.ASCII)
}

// Unicode returns the Unicode rendering of n.
func Unicode(n *ast.Node) string {
	return String(n, notation.Unicode)
}

func encode(n *ast.Node, w io.Writer, es *EncState) error {
	switch n.Kind {
	case ast.VarKind:
		return writeString(w, es.color(VarColor, n.Name))
	case ast.NotKind:
		if err := writeString(w, es.color(OpColor, NotGlyph(es.notation))); err != nil {
			return err
		}
		return encode(n.Child, w, es)
	case ast.BinaryKind:
		if err := writeString(w, es.color(ParenColor, "(")); err != nil {
			return err
		}
		if err := encode(n.Left, w, es); err != nil {
			return err
		}
		if err := writeString(w, " "+es.color(OpColor, OpGlyph(n.Op, es.notation))+" "); err != nil {
			return err
		}
		if err := encode(n.Right, w, es); err != nil {
			return err
		}
		return writeString(w, es.color(ParenColor, ")"))
	default:
		return fmt.Errorf("unknown kind %d", n.Kind)
	}
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
