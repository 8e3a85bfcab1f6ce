package parse

import (
	"github.com/truthtab/go-prop/ast"
	"github.com/truthtab/go-prop/debug"
	"github.com/truthtab/go-prop/token"
)

// Parse tokenizes and parses input into a formula tree. Node identities
// are assigned in construction order from a counter owned by this call,
// starting at 1; children are constructed before the parent that wraps
// them. Errors are *token.LexError or *ParseError.
func Parse(input string) (*ast.Node, error) {
	toks, err := token.Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.bicond()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, trailingErr(p.toks[p.pos])
	}
	if debug.Parse() {
		debug.Logf("parsed %q as %s\n", input, debug.Formula{Node: n})
	}
	return n, nil
}

type parser struct {
	toks []token.Token
	pos  int
	ids  ast.IDs
}

func (p *parser) have(t token.TokenType) bool {
	return p.pos < len(p.toks) && p.toks[p.pos].Type == t
}

func (p *parser) bicond() (*ast.Node, error) {
	n, err := p.imp()
	if err != nil {
		return nil, err
	}
	for p.have(token.TBicond) {
		p.pos++
		right, err := p.imp()
		if err != nil {
			return nil, err
		}
		n = ast.NewBinary(&p.ids, ast.Bicond, n, right)
	}
	return n, nil
}

func (p *parser) imp() (*ast.Node, error) {
	n, err := p.or()
	if err != nil {
		return nil, err
	}
	for p.have(token.TImp) {
		p.pos++
		right, err := p.or()
		if err != nil {
			return nil, err
		}
		n = ast.NewBinary(&p.ids, ast.Imp, n, right)
	}
	return n, nil
}

func (p *parser) or() (*ast.Node, error) {
	n, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.have(token.TOr) {
		p.pos++
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		n = ast.NewBinary(&p.ids, ast.Or, n, right)
	}
	return n, nil
}

func (p *parser) and() (*ast.Node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.have(token.TAnd) {
		p.pos++
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		n = ast.NewBinary(&p.ids, ast.And, n, right)
	}
	return n, nil
}

func (p *parser) unary() (*ast.Node, error) {
	if p.have(token.TNot) {
		p.pos++
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(&p.ids, child), nil
	}
	return p.primary()
}

func (p *parser) primary() (*ast.Node, error) {
	if p.pos >= len(p.toks) {
		return nil, eofErr("a variable or '('")
	}
	tok := p.toks[p.pos]
	switch tok.Type {
	case token.TVar:
		p.pos++
		return ast.NewVar(&p.ids, tok.Name), nil
	case token.TLParen:
		p.pos++
		n, err := p.bicond()
		if err != nil {
			return nil, err
		}
		if !p.have(token.TRParen) {
			if p.pos >= len(p.toks) {
				return nil, eofErr("')'")
			}
			return nil, unexpectedErr(p.toks[p.pos], "')'")
		}
		p.pos++
		return n, nil
	default:
		return nil, unexpectedErr(tok, "a variable or '('")
	}
}
