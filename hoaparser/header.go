package hoaparser

import "fmt"

// parseHeaderItem parses one header declaration. The caller has verified the
// next token is a header name. Each case observes the threaded context
// (apCount, aliases) left by the preceding items and may extend it.
func (p *parser) parseHeaderItem() (HeaderItem, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Literal {
	case "States":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return HeaderStates{Count: n}, nil

	case "AP":
		return p.parseAPDecl()

	case "Alias":
		return p.parseAliasDecl()

	case "Acceptance":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		cond, err := parseExpr(p, acceptanceOps(n))
		if err != nil {
			return nil, err
		}
		return HeaderAcceptance{Sets: n, Cond: cond}, nil

	case "Start":
		states, err := p.parseIndexConjunction()
		if err != nil {
			return nil, err
		}
		return HeaderStart{States: states}, nil

	case "tool":
		return p.parseToolDecl()

	case "name":
		text, err := p.expect(TokenString)
		if err != nil {
			return nil, err
		}
		return HeaderName{Text: text.Literal}, nil

	case "properties":
		var props []string
		for {
			tok, err := p.peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind != TokenIdentifier {
				break
			}
			_, _ = p.next()
			props = append(props, tok.Literal)
		}
		return HeaderProperties{Props: props}, nil

	case "acc-name":
		name, err := p.parseAccName()
		if err != nil {
			return nil, err
		}
		return HeaderAccName{Name: name}, nil

	default:
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("unknown header %q", tok.Literal+":"),
				Pos:     tok.Pos,
			},
			Expected: "header item",
			Got:      fmt.Sprintf("%q", tok.Literal+":"),
		}
	}
}

// parseAPDecl parses 'AP: n "p1" "p2" ...' and sets the threaded AP count to
// the declared n. The declared count is what later range checks use; it is
// not required to match the number of strings.
func (p *parser) parseAPDecl() (HeaderItem, error) {
	n, err := p.expectInt()
	if err != nil {
		return nil, err
	}

	var names []string
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenString {
			break
		}
		_, _ = p.next()
		names = append(names, tok.Literal)
	}

	p.ctx.apCount = n
	return HeaderAP{Count: n, Names: names}, nil
}

// parseAliasDecl parses 'Alias: @name expr'. The name joins the alias set
// only after its body parses, so an alias cannot reference itself; earlier
// aliases are visible inside the body.
func (p *parser) parseAliasDecl() (HeaderItem, error) {
	nameTok, err := p.expect(TokenAlias)
	if err != nil {
		return nil, err
	}
	if p.ctx.aliases[nameTok.Literal] {
		return nil, &DuplicateAliasError{
			ParseError: ParseError{
				Message: fmt.Sprintf("alias @%s declared twice", nameTok.Literal),
				Pos:     nameTok.Pos,
			},
			Name: nameTok.Literal,
		}
	}

	expr, err := parseExpr(p, labelExprOps(&p.ctx))
	if err != nil {
		return nil, err
	}

	p.ctx.aliases[nameTok.Literal] = true
	return HeaderAlias{Name: nameTok.Literal, Expr: expr}, nil
}

// parseToolDecl parses 'tool: "name" ["version"]'.
func (p *parser) parseToolDecl() (HeaderItem, error) {
	name, err := p.expect(TokenString)
	if err != nil {
		return nil, err
	}

	item := HeaderTool{Name: name.Literal}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenString {
		_, _ = p.next()
		item.Version = tok.Literal
	}
	return item, nil
}

// parseIndexConjunction parses a non-empty '&'-separated state index list.
func (p *parser) parseIndexConjunction() ([]int, error) {
	first, err := p.expectInt()
	if err != nil {
		return nil, err
	}
	indices := []int{first}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenAnd {
			return indices, nil
		}
		_, _ = p.next()
		i, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		indices = append(indices, i)
	}
}

// parseAccName parses the closed acc-name descriptor catalogue.
func (p *parser) parseAccName() (AcceptanceName, error) {
	tok, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	switch tok.Literal {
	case "Buchi":
		return BuchiName{}, nil
	case "co-Buchi":
		return CoBuchiName{}, nil
	case "generalized-Buchi":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return GenBuchiName{Count: n}, nil
	case "generalized-co-Buchi":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return GenCoBuchiName{Count: n}, nil
	case "Streett":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return StreettName{Pairs: n}, nil
	case "Rabin":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return RabinName{Pairs: n}, nil
	case "generalized-Rabin":
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		sizes := make([]int, 0, n)
		for i := 0; i < n; i++ {
			s, err := p.expectInt()
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, s)
		}
		return GenRabinName{Pairs: n, Sizes: sizes}, nil
	case "parity":
		order, err := p.parseParityOrder()
		if err != nil {
			return nil, err
		}
		kind, err := p.parseParityKind()
		if err != nil {
			return nil, err
		}
		n, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		return ParityName{Order: order, Kind: kind, Count: n}, nil
	case "all":
		return AllName{}, nil
	case "none":
		return NoneName{}, nil
	default:
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("unknown acceptance name %q", tok.Literal),
				Pos:     tok.Pos,
			},
			Expected: "acceptance name",
			Got:      fmt.Sprintf("%q", tok.Literal),
		}
	}
}

func (p *parser) parseParityOrder() (ParityOrder, error) {
	tok, err := p.expect(TokenIdentifier)
	if err != nil {
		return "", err
	}
	switch tok.Literal {
	case "min":
		return ParityMin, nil
	case "max":
		return ParityMax, nil
	default:
		return "", &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "'min' or 'max'",
			Got:        fmt.Sprintf("%q", tok.Literal),
		}
	}
}

func (p *parser) parseParityKind() (ParityKind, error) {
	tok, err := p.expect(TokenIdentifier)
	if err != nil {
		return "", err
	}
	switch tok.Literal {
	case "even":
		return ParityEven, nil
	case "odd":
		return ParityOdd, nil
	default:
		return "", &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "'even' or 'odd'",
			Got:        fmt.Sprintf("%q", tok.Literal),
		}
	}
}
