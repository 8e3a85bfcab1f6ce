package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	VarColor ColorAttr = iota
	OpColor
	ParenColor
	TrueColor
	FalseColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[VarColor] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[OpColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[ParenColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[TrueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[FalseColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[HeaderColor] = color.RGB(74, 92, 138).SprintfFunc()
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// Bool renders a truth value as T or F with the matching color.
func (c *Colors) Bool(b bool) string {
	if b {
		return c.Color(TrueColor, "T")
	}
	return c.Color(FalseColor, "F")
}
