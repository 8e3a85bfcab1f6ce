// Package notation names the two surface spellings of the connectives.
package notation

import (
	"errors"
	"fmt"
)

type Notation int

const (
	ASCII Notation = iota
	Unicode
)

var ErrBadNotation = errors.New("bad notation")

func ParseNotation(v string) (Notation, error) {
	n, ok := map[string]Notation{
		"a":       ASCII,
		"ascii":   ASCII,
		"u":       Unicode,
		"unicode": Unicode,
	}[v]
	if ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadNotation, v)
}

func (n Notation) String() string {
	d, err := n.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (n Notation) MarshalText() ([]byte, error) {
	switch n {
	case ASCII:
		return []byte("ascii"), nil
	case Unicode:
		return []byte("unicode"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a notation>", n)
	}
}

func (n *Notation) UnmarshalText(d []byte) error {
	pn, err := ParseNotation(string(d))
	if err != nil {
		return err
	}
	*n = pn
	return nil
}

func (n Notation) IsASCII() bool   { return n == ASCII }
func (n Notation) IsUnicode() bool { return n == Unicode }

// AllNotations returns all supported notations in preference order.
func AllNotations() []Notation {
	return []Notation{Unicode, ASCII}
}
