package token

import (
	"strings"
	"unicode/utf8"
)

// Tokenize converts input into tokens, scanning left to right and
// consuming the longest applicable lexeme first. Whitespace is skipped.
// It fails with a *LexError on the first character that is not
// whitespace, a parenthesis, a connective spelling, or an uppercase
// letter.
func Tokenize(input string) ([]Token, error) {
	var toks []Token
	off := 0
	for off < len(input) {
		r, size := utf8.DecodeRuneInString(input[off:])
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			off += size
		case strings.HasPrefix(input[off:], "<->"):
			toks = append(toks, Token{Type: TBicond})
			off += len("<->")
		case strings.HasPrefix(input[off:], "->"):
			toks = append(toks, Token{Type: TImp})
			off += len("->")
		case r == '↔':
			toks = append(toks, Token{Type: TBicond})
			off += size
		case r == '→':
			toks = append(toks, Token{Type: TImp})
			off += size
		case r == '(':
			toks = append(toks, Token{Type: TLParen})
			off += size
		case r == ')':
			toks = append(toks, Token{Type: TRParen})
			off += size
		case r == '~' || r == '¬':
			toks = append(toks, Token{Type: TNot})
			off += size
		case r == '&' || r == '∧':
			toks = append(toks, Token{Type: TAnd})
			off += size
		// v and V are disjunction, shadowing the variable alphabet, so
		// this arm must precede the uppercase letter arm.
		case r == 'v' || r == 'V' || r == '∨':
			toks = append(toks, Token{Type: TOr})
			off += size
		case 'A' <= r && r <= 'Z':
			toks = append(toks, Token{Type: TVar, Name: string(r)})
			off += size
		default:
			return nil, &LexError{Rune: r, Offset: off}
		}
	}
	return toks, nil
}
