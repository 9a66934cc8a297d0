package hoaparser

import (
	"fmt"
	"strconv"
)

// exprOps parametrizes the shared precedence-climbing expression parser over
// one of the two Boolean algebras in the format. The engine itself handles
// the 't'/'f' literals, parentheses, and the '&'/'|' infix operators (both
// left-associative, '|' weakest); atoms and the optional prefix '!' are
// supplied per instantiation.
type exprOps[T any] struct {
	name string // what the algebra is called in error messages
	atom func(p *parser) (T, error)
	lit  func(v bool) T
	not  func(x T) T // nil when '!' is not part of this grammar
	and  func(l, r T) T
	or   func(l, r T) T
}

// parseExpr parses a full expression: a disjunction of conjunctions.
// These are free functions rather than parser methods because Go methods
// cannot carry type parameters.
func parseExpr[T any](p *parser, ops exprOps[T]) (T, error) {
	var zero T
	left, err := parseExprAnd(p, ops)
	if err != nil {
		return zero, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return zero, err
		}
		if tok.Kind != TokenOr {
			return left, nil
		}
		_, _ = p.next()
		right, err := parseExprAnd(p, ops)
		if err != nil {
			return zero, err
		}
		left = ops.or(left, right)
	}
}

func parseExprAnd[T any](p *parser, ops exprOps[T]) (T, error) {
	var zero T
	left, err := parseExprUnary(p, ops)
	if err != nil {
		return zero, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return zero, err
		}
		if tok.Kind != TokenAnd {
			return left, nil
		}
		_, _ = p.next()
		right, err := parseExprUnary(p, ops)
		if err != nil {
			return zero, err
		}
		left = ops.and(left, right)
	}
}

func parseExprUnary[T any](p *parser, ops exprOps[T]) (T, error) {
	var zero T
	tok, err := p.peek()
	if err != nil {
		return zero, err
	}
	if tok.Kind == TokenNot {
		if ops.not == nil {
			return zero, &SyntaxError{
				ParseError: ParseError{Pos: tok.Pos},
				Expected:   fmt.Sprintf("%s term", ops.name),
				Got:        "'!'",
			}
		}
		_, _ = p.next()
		sub, err := parseExprUnary(p, ops)
		if err != nil {
			return zero, err
		}
		return ops.not(sub), nil
	}
	return parseExprTerm(p, ops)
}

func parseExprTerm[T any](p *parser, ops exprOps[T]) (T, error) {
	var zero T
	tok, err := p.peek()
	if err != nil {
		return zero, err
	}

	switch {
	case tok.Kind == TokenIdentifier && tok.Literal == "t":
		_, _ = p.next()
		return ops.lit(true), nil
	case tok.Kind == TokenIdentifier && tok.Literal == "f":
		_, _ = p.next()
		return ops.lit(false), nil
	case tok.Kind == TokenLParen:
		_, _ = p.next()
		sub, err := parseExpr(p, ops)
		if err != nil {
			return zero, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return zero, err
		}
		return sub, nil
	}

	return ops.atom(p)
}

// labelExprOps instantiates the engine for state/edge label expressions:
// prefix '!' plus AP-index and alias atoms, both validated against the
// threaded header context.
func labelExprOps(ctx *headerContext) exprOps[LabelExpr] {
	return exprOps[LabelExpr]{
		name: "label expression",
		atom: func(p *parser) (LabelExpr, error) {
			tok, err := p.peek()
			if err != nil {
				return nil, err
			}
			switch tok.Kind {
			case TokenInteger:
				_, _ = p.next()
				i, err := parseInt(tok)
				if err != nil {
					return nil, err
				}
				if i < 0 || i >= ctx.apCount {
					return nil, &RangeError{
						ParseError: ParseError{
							Message: fmt.Sprintf("atomic proposition %d out of range [0, %d)", i, ctx.apCount),
							Pos:     tok.Pos,
						},
						What:  "atomic proposition",
						Index: i,
						Count: ctx.apCount,
					}
				}
				return LabelAP{Index: i}, nil
			case TokenAlias:
				_, _ = p.next()
				if !ctx.aliases[tok.Literal] {
					return nil, &UndeclaredAliasError{
						ParseError: ParseError{
							Message: fmt.Sprintf("reference to undeclared alias @%s", tok.Literal),
							Pos:     tok.Pos,
						},
						Name: tok.Literal,
					}
				}
				return LabelAlias{Name: tok.Literal}, nil
			default:
				return nil, &SyntaxError{
					ParseError: ParseError{Pos: tok.Pos},
					Expected:   "label expression term",
					Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
				}
			}
		},
		lit: func(v bool) LabelExpr { return LabelBool{Value: v} },
		not: func(x LabelExpr) LabelExpr { return LabelNot{Expr: x} },
		and: func(l, r LabelExpr) LabelExpr { return LabelAnd{Left: l, Right: r} },
		or:  func(l, r LabelExpr) LabelExpr { return LabelOr{Left: l, Right: r} },
	}
}

// acceptanceOps instantiates the engine for acceptance conditions: no prefix
// operator, atoms are Fin(i), Inf(i), Fin(!i), Inf(!i) with i validated
// against the declared acceptance-set count.
func acceptanceOps(sets int) exprOps[AcceptanceCond] {
	return exprOps[AcceptanceCond]{
		name: "acceptance condition",
		atom: func(p *parser) (AcceptanceCond, error) {
			tok, err := p.next()
			if err != nil {
				return nil, err
			}
			if tok.Kind != TokenIdentifier || (tok.Literal != "Fin" && tok.Literal != "Inf") {
				return nil, &SyntaxError{
					ParseError: ParseError{Pos: tok.Pos},
					Expected:   "'Fin' or 'Inf'",
					Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
				}
			}

			if _, err := p.expect(TokenLParen); err != nil {
				return nil, err
			}

			complement := false
			peeked, err := p.peek()
			if err != nil {
				return nil, err
			}
			if peeked.Kind == TokenNot {
				_, _ = p.next()
				complement = true
			}

			intTok, err := p.expect(TokenInteger)
			if err != nil {
				return nil, err
			}
			i, err := parseInt(intTok)
			if err != nil {
				return nil, err
			}
			if i < 0 || i >= sets {
				return nil, &RangeError{
					ParseError: ParseError{
						Message: fmt.Sprintf("acceptance set %d out of range [0, %d)", i, sets),
						Pos:     intTok.Pos,
					},
					What:  "acceptance set",
					Index: i,
					Count: sets,
				}
			}

			if _, err := p.expect(TokenRParen); err != nil {
				return nil, err
			}

			if tok.Literal == "Fin" {
				return AccFin{Index: i, Complement: complement}, nil
			}
			return AccInf{Index: i, Complement: complement}, nil
		},
		lit: func(v bool) AcceptanceCond { return AccBool{Value: v} },
		not: nil,
		and: func(l, r AcceptanceCond) AcceptanceCond { return AccAnd{Left: l, Right: r} },
		or:  func(l, r AcceptanceCond) AcceptanceCond { return AccOr{Left: l, Right: r} },
	}
}

// parseInt converts an integer token's literal. The lexer only produces
// digit runs, so failures are overflow.
func parseInt(tok Token) (int, error) {
	n, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return 0, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("invalid integer %q: %v", tok.Literal, err),
				Pos:     tok.Pos,
				Cause:   err,
			},
			Expected: "integer",
			Got:      fmt.Sprintf("%q", tok.Literal),
		}
	}
	return n, nil
}
