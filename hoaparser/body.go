package hoaparser

// parseState parses one 'State:' record and its edges. The caller has
// verified the next token is the 'State:' header name. Successor indices are
// not checked against the parsed records; forward and dangling references
// are permitted.
func (p *parser) parseState() (State, error) {
	_, _ = p.next() // consume 'State:'

	label, err := p.parseOptionalLabel()
	if err != nil {
		return State{}, err
	}

	index, err := p.expectInt()
	if err != nil {
		return State{}, err
	}

	st := State{Label: label, Index: index}

	tok, err := p.peek()
	if err != nil {
		return State{}, err
	}
	if tok.Kind == TokenString {
		_, _ = p.next()
		st.Description = tok.Literal
	}

	st.AccSig, err = p.parseOptionalAccSig()
	if err != nil {
		return State{}, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return State{}, err
		}
		if tok.Kind != TokenLBracket && tok.Kind != TokenInteger {
			return st, nil
		}
		edge, err := p.parseEdge()
		if err != nil {
			return State{}, err
		}
		st.Edges = append(st.Edges, edge)
	}
}

// parseEdge parses '[label]? i1&i2&... {sig}?'. The successor conjunction is
// mandatory and non-empty.
func (p *parser) parseEdge() (Edge, error) {
	label, err := p.parseOptionalLabel()
	if err != nil {
		return Edge{}, err
	}

	successors, err := p.parseIndexConjunction()
	if err != nil {
		return Edge{}, err
	}

	sig, err := p.parseOptionalAccSig()
	if err != nil {
		return Edge{}, err
	}

	return Edge{Label: label, Successors: successors, AccSig: sig}, nil
}

// parseOptionalLabel parses a bracketed label expression if one is next.
// Returns nil when the label is absent.
func (p *parser) parseOptionalLabel() (LabelExpr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenLBracket {
		return nil, nil
	}
	_, _ = p.next()

	expr, err := parseExpr(p, labelExprOps(&p.ctx))
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseOptionalAccSig parses a curly-braced acceptance-set signature if one
// is next. Returns nil when absent; a present '{}' yields a non-nil empty
// slice so serialization preserves it.
func (p *parser) parseOptionalAccSig() ([]int, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenLBrace {
		return nil, nil
	}
	_, _ = p.next()

	sig := []int{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenInteger {
			break
		}
		i, err := p.expectInt()
		if err != nil {
			return nil, err
		}
		sig = append(sig, i)
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return sig, nil
}
