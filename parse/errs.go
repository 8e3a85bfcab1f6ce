package parse

import (
	"errors"
	"fmt"

	"github.com/truthtab/go-prop/token"
)

var ErrParse = errors.New("parse error")

// ParseError describes why a parse attempt failed. It is terminal for the
// attempt: no partial tree is produced.
type ParseError struct {
	Cause string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrParse, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func eofErr(what string) error {
	return &ParseError{Cause: fmt.Sprintf("unexpected end of input, expected %s", what)}
}

func unexpectedErr(tok token.Token, what string) error {
	return &ParseError{Cause: fmt.Sprintf("unexpected token %s, expected %s", tok, what)}
}

func trailingErr(tok token.Token) error {
	return &ParseError{Cause: fmt.Sprintf("trailing token %s after complete formula", tok)}
}
