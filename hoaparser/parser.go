package hoaparser

import "fmt"

// Parse parses HOA source text and returns a Document.
// Returns a *SyntaxError, *LexError, *RangeError, *DuplicateAliasError, or
// *UndeclaredAliasError on failure. The first failure in scan order aborts
// the whole parse; there is no partial result.
func Parse(src []byte) (*Document, error) {
	p := &parser{
		lex: NewLexer(src),
		ctx: headerContext{aliases: make(map[string]bool)},
	}
	return p.parseDocument()
}

// headerContext is the validation state threaded through the header items.
// Each item observes the context produced by all strictly preceding items
// and may extend it.
type headerContext struct {
	apCount int
	aliases map[string]bool
}

type parser struct {
	lex *Lexer
	ctx headerContext
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return tok, nil
}

// expectInt consumes an integer token and converts it.
func (p *parser) expectInt() (int, error) {
	tok, err := p.expect(TokenInteger)
	if err != nil {
		return 0, err
	}
	return parseInt(tok)
}

// expectIdentifier consumes an identifier token with the exact given text.
func (p *parser) expectIdentifier(want string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenIdentifier || tok.Literal != want {
		return &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   fmt.Sprintf("%q", want),
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return nil
}

// parseDocument enforces the envelope: 'HOA: v1' <header> '--BODY--' <body>
// '--END--' with nothing but whitespace and comments after.
func (p *parser) parseDocument() (*Document, error) {
	tok, err := p.expect(TokenHeaderName)
	if err != nil {
		return nil, err
	}
	if tok.Literal != "HOA" {
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "'HOA:'",
			Got:        fmt.Sprintf("%q", tok.Literal+":"),
		}
	}
	if err := p.expectIdentifier("v1"); err != nil {
		return nil, err
	}

	var header []HeaderItem
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenHeaderName {
			break
		}
		item, err := p.parseHeaderItem()
		if err != nil {
			return nil, err
		}
		header = append(header, item)
	}

	if _, err := p.expect(TokenBody); err != nil {
		return nil, err
	}

	var states []State
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenHeaderName || tok.Literal != "State" {
			break
		}
		st, err := p.parseState()
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}

	if _, err := p.expect(TokenEnd); err != nil {
		return nil, err
	}

	// Reject trailing content (one automaton per document)
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: "only one automaton per document is allowed",
				Pos:     tok.Pos,
			},
			Expected: "EOF",
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}

	return &Document{Header: header, States: states}, nil
}
