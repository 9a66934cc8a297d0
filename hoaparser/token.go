package hoaparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenHeaderName           // identifier immediately followed by ':' (colon not in Literal)
	TokenIdentifier           // [A-Za-z_][A-Za-z0-9_-]*
	TokenAlias                // @[A-Za-z0-9_-]+ ('@' not in Literal)
	TokenInteger              // [0-9]+
	TokenString               // "..." with escape processing
	TokenBody                 // --BODY--
	TokenEnd                  // --END--
	TokenNot                  // !
	TokenAnd                  // &
	TokenOr                   // |
	TokenLParen               // (
	TokenRParen               // )
	TokenLBracket             // [
	TokenRBracket             // ]
	TokenLBrace               // {
	TokenRBrace               // }
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenHeaderName: "header name",
	TokenIdentifier: "identifier",
	TokenAlias:      "alias name",
	TokenInteger:    "integer",
	TokenString:     "string",
	TokenBody:       "'--BODY--'",
	TokenEnd:        "'--END--'",
	TokenNot:        "'!'",
	TokenAnd:        "'&'",
	TokenOr:         "'|'",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw for others)
	Pos     Position
}
