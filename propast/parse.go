package propast

import "strconv"

// parser consumes a token stream front-to-back, building entries into t as
// it goes.
type parser struct {
	source string
	tokens []token
	t      *Table
}

func (p *parser) fail() error {
	return &ErrPropertyNotParseable{Source: p.source}
}

func (p *parser) pop() (token, bool) {
	if len(p.tokens) == 0 {
		return token{}, false
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok, true
}

func (p *parser) peek() (token, bool) {
	if len(p.tokens) == 0 {
		return token{}, false
	}
	return p.tokens[0], true
}

// parseLiteral turns a numeric token's text into its value: a "0b" prefix
// selects base 2, a "0x" prefix selects base 16, anything else is decimal
// (Go's strconv.ParseUint with base 0 already applies exactly these rules
// from the prefix).
func parseLiteral(text string) (uint64, error) {
	return strconv.ParseUint(text, 0, 64)
}

// parseUni parses "(p)" for a unary operator's single argument.
func (p *parser) parseUni() (int, error) {
	open, ok := p.pop()
	if !ok || open.kind != tokOpen {
		return 0, p.fail()
	}
	inner, err := p.parseProposition()
	if err != nil {
		return 0, err
	}
	closeTok, ok := p.pop()
	if !ok || closeTok.kind != tokClose {
		return 0, p.fail()
	}
	return inner, nil
}

// parseU parses "(p,q)" for a binary U/R operator's argument pair.
func (p *parser) parseU() (int, int, error) {
	open, ok := p.pop()
	if !ok || open.kind != tokOpen {
		return 0, 0, p.fail()
	}
	hold, err := p.parseProposition()
	if err != nil {
		return 0, 0, err
	}
	comma, ok := p.pop()
	if !ok || comma.kind != tokComma {
		return 0, 0, p.fail()
	}
	until, err := p.parseProposition()
	if err != nil {
		return 0, 0, err
	}
	closeTok, ok := p.pop()
	if !ok || closeTok.kind != tokClose {
		return 0, 0, p.fail()
	}
	return hold, until, nil
}

func (p *parser) parseProposition() (int, error) {
	tok, ok := p.pop()
	if !ok {
		return 0, p.fail()
	}
	switch tok.kind {
	case tokNot:
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddNegation(inner), nil
	case tokAnd:
		a, b, err := p.parseU()
		if err != nil {
			return 0, err
		}
		return p.t.AddAnd(a, b), nil
	case tokOr:
		a, b, err := p.parseU()
		if err != nil {
			return 0, err
		}
		return p.t.AddOr(a, b), nil
	case tokIdent:
		// fall through to the keyword/atom switch below
	default:
		return 0, p.fail()
	}
	switch tok.text {
	case "EX":
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddEX(inner), nil
	case "AX":
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddAX(inner), nil
	case "EF":
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddEF(inner), nil
	case "AF":
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddAF(inner), nil
	case "EG":
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddEG(inner), nil
	case "AG":
		inner, err := p.parseUni()
		if err != nil {
			return 0, err
		}
		return p.t.AddAG(inner), nil
	case "EU":
		hold, until, err := p.parseU()
		if err != nil {
			return 0, err
		}
		return p.t.AddEU(hold, until), nil
	case "AU":
		hold, until, err := p.parseU()
		if err != nil {
			return 0, err
		}
		return p.t.AddAU(hold, until), nil
	case "ER":
		hold, until, err := p.parseU()
		if err != nil {
			return 0, err
		}
		return p.t.AddER(hold, until), nil
	case "AR":
		hold, until, err := p.parseU()
		if err != nil {
			return 0, err
		}
		return p.t.AddAR(hold, until), nil
	default:
		// a bare identifier is an atomic proposition, unless it is
		// immediately followed by "== literal", making it a
		// field-versus-literal comparison atom instead.
		if next, ok := p.peek(); ok && next.kind == tokEq {
			p.pop()
			numTok, ok := p.pop()
			if !ok || numTok.kind != tokNum {
				return 0, p.fail()
			}
			value, err := parseLiteral(numTok.text)
			if err != nil {
				return 0, p.fail()
			}
			return p.t.AddAtomicEq(tok.text, value), nil
		}
		return p.t.AddAtomic(tok.text), nil
	}
}

// Parse parses the prefix grammar
//
//	¬(p) | ∧(p,q) | ∨(p,q) |
//	EX(p) | AX(p) | EF(p) | AF(p) | EG(p) | AG(p) |
//	EU(p,q) | AU(p,q) | ER(p,q) | AR(p,q) |
//	ident | ident==literal
//
// into a Table. Const nodes are not part of the surface grammar: they only
// ever arise from PNF/ENF normalization, or from formulas built directly
// through the Table's Add* constructors.
func Parse(source string) (*Table, error) {
	tokens, err := lex(source)
	if err != nil {
		return nil, err
	}
	p := &parser{source: source, tokens: tokens, t: NewTable()}
	root, err := p.parseProposition()
	if err != nil {
		return nil, err
	}
	if len(p.tokens) != 0 {
		return nil, p.fail()
	}
	return p.t.SetRoot(root), nil
}
