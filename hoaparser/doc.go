// Package hoaparser implements the Hanoi Omega-Automata (HOA) exchange
// format: parsing, canonical serialization, and opt-in validation.
//
// HOA is a textual interchange format for omega-automata. States and edges
// carry Boolean label expressions over declared atomic propositions, and the
// header declares an acceptance condition over numbered acceptance sets
// (Buchi, Rabin, Streett, parity, and generalized variants).
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream, stripping whitespace
//     and /* block */ comments.
//   - Parser: consumes tokens according to the grammar and builds an AST,
//     threading the header validation context (declared AP count, declared
//     alias set) so later declarations are checked against earlier ones.
//   - AST types: the output data structures (Document, HeaderItem, State,
//     Edge, LabelExpr, AcceptanceCond).
//
// The two Boolean sub-languages (label expressions with negation, acceptance
// conditions without) share one generic precedence-climbing engine
// instantiated with different atom parsers and operator sets.
//
// Usage:
//
//	doc, err := hoaparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := hoaparser.Serialize(doc)
//
// Serialize is the structural inverse of Parse: its output always re-parses
// to a document equal to the input. Parsing performs only the checks the
// format requires (AP and acceptance-set ranges, alias declaration order);
// structural hygiene such as dangling successor references is covered by the
// separate Validate layer.
package hoaparser
