package encode

import "github.com/truthtab/go-prop/notation"

type Option func(*EncState)

func EncodeNotation(nt notation.Notation) Option {
	return func(es *EncState) { es.notation = nt }
}

func EncodeColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
