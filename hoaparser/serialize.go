package hoaparser

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders a document in the canonical layout: one header item per
// line, one line per state record and per edge, minimal parentheses.
// Serialization is total over well-formed documents and its output parses
// back to a structurally equal document.
func Serialize(doc *Document) []byte {
	var sb strings.Builder
	sb.WriteString("HOA: v1\n")
	for _, item := range doc.Header {
		writeHeaderItem(&sb, item)
		sb.WriteByte('\n')
	}
	sb.WriteString("--BODY--\n")
	for _, st := range doc.States {
		writeState(&sb, st)
	}
	sb.WriteString("--END--\n")
	return []byte(sb.String())
}

func writeHeaderItem(sb *strings.Builder, item HeaderItem) {
	switch it := item.(type) {
	case HeaderStates:
		fmt.Fprintf(sb, "States: %d", it.Count)
	case HeaderAP:
		fmt.Fprintf(sb, "AP: %d", it.Count)
		for _, name := range it.Names {
			sb.WriteByte(' ')
			writeQuoted(sb, name)
		}
	case HeaderAlias:
		fmt.Fprintf(sb, "Alias: @%s ", it.Name)
		writeLabelExpr(sb, it.Expr, 0)
	case HeaderAcceptance:
		fmt.Fprintf(sb, "Acceptance: %d ", it.Sets)
		writeAcceptanceCond(sb, it.Cond, 0)
	case HeaderStart:
		sb.WriteString("Start: ")
		writeIndexConjunction(sb, it.States)
	case HeaderTool:
		sb.WriteString("tool: ")
		writeQuoted(sb, it.Name)
		if it.Version != "" {
			sb.WriteByte(' ')
			writeQuoted(sb, it.Version)
		}
	case HeaderName:
		sb.WriteString("name: ")
		writeQuoted(sb, it.Text)
	case HeaderProperties:
		sb.WriteString("properties:")
		for _, prop := range it.Props {
			sb.WriteByte(' ')
			sb.WriteString(prop)
		}
	case HeaderAccName:
		sb.WriteString("acc-name: ")
		writeAccName(sb, it.Name)
	}
}

func writeAccName(sb *strings.Builder, name AcceptanceName) {
	switch n := name.(type) {
	case BuchiName:
		sb.WriteString("Buchi")
	case CoBuchiName:
		sb.WriteString("co-Buchi")
	case GenBuchiName:
		fmt.Fprintf(sb, "generalized-Buchi %d", n.Count)
	case GenCoBuchiName:
		fmt.Fprintf(sb, "generalized-co-Buchi %d", n.Count)
	case StreettName:
		fmt.Fprintf(sb, "Streett %d", n.Pairs)
	case RabinName:
		fmt.Fprintf(sb, "Rabin %d", n.Pairs)
	case GenRabinName:
		fmt.Fprintf(sb, "generalized-Rabin %d", n.Pairs)
		for _, s := range n.Sizes {
			fmt.Fprintf(sb, " %d", s)
		}
	case ParityName:
		fmt.Fprintf(sb, "parity %s %s %d", n.Order, n.Kind, n.Count)
	case AllName:
		sb.WriteString("all")
	case NoneName:
		sb.WriteString("none")
	}
}

func writeState(sb *strings.Builder, st State) {
	sb.WriteString("State:")
	if st.Label != nil {
		sb.WriteString(" [")
		writeLabelExpr(sb, st.Label, 0)
		sb.WriteByte(']')
	}
	fmt.Fprintf(sb, " %d", st.Index)
	if st.Description != "" {
		sb.WriteByte(' ')
		writeQuoted(sb, st.Description)
	}
	if st.AccSig != nil {
		sb.WriteByte(' ')
		writeAccSig(sb, st.AccSig)
	}
	sb.WriteByte('\n')
	for _, e := range st.Edges {
		writeEdge(sb, e)
	}
}

func writeEdge(sb *strings.Builder, e Edge) {
	if e.Label != nil {
		sb.WriteByte('[')
		writeLabelExpr(sb, e.Label, 0)
		sb.WriteString("] ")
	}
	writeIndexConjunction(sb, e.Successors)
	if e.AccSig != nil {
		sb.WriteByte(' ')
		writeAccSig(sb, e.AccSig)
	}
	sb.WriteByte('\n')
}

func writeIndexConjunction(sb *strings.Builder, indices []int) {
	for i, idx := range indices {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
}

func writeAccSig(sb *strings.Builder, sig []int) {
	sb.WriteByte('{')
	for i, idx := range sig {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	sb.WriteByte('}')
}

// Operator precedence levels shared by both expression renderers. A child is
// parenthesized when its level is below the minimum its position requires;
// the right operand of an infix requires one level more than the left so the
// output re-parses to the same left-associated tree.
const (
	precOr = iota + 1
	precAnd
	precNot
	precAtom
)

func labelPrec(e LabelExpr) int {
	switch e.(type) {
	case LabelOr:
		return precOr
	case LabelAnd:
		return precAnd
	case LabelNot:
		return precNot
	default:
		return precAtom
	}
}

func writeLabelExpr(sb *strings.Builder, e LabelExpr, min int) {
	if labelPrec(e) < min {
		sb.WriteByte('(')
		writeLabelExpr(sb, e, 0)
		sb.WriteByte(')')
		return
	}
	switch ex := e.(type) {
	case LabelBool:
		if ex.Value {
			sb.WriteByte('t')
		} else {
			sb.WriteByte('f')
		}
	case LabelAP:
		sb.WriteString(strconv.Itoa(ex.Index))
	case LabelAlias:
		sb.WriteByte('@')
		sb.WriteString(ex.Name)
	case LabelNot:
		sb.WriteByte('!')
		writeLabelExpr(sb, ex.Expr, precNot)
	case LabelAnd:
		writeLabelExpr(sb, ex.Left, precAnd)
		sb.WriteString(" & ")
		writeLabelExpr(sb, ex.Right, precAnd+1)
	case LabelOr:
		writeLabelExpr(sb, ex.Left, precOr)
		sb.WriteString(" | ")
		writeLabelExpr(sb, ex.Right, precOr+1)
	}
}

func accPrec(c AcceptanceCond) int {
	switch c.(type) {
	case AccOr:
		return precOr
	case AccAnd:
		return precAnd
	default:
		return precAtom
	}
}

func writeAcceptanceCond(sb *strings.Builder, c AcceptanceCond, min int) {
	if accPrec(c) < min {
		sb.WriteByte('(')
		writeAcceptanceCond(sb, c, 0)
		sb.WriteByte(')')
		return
	}
	switch cond := c.(type) {
	case AccBool:
		if cond.Value {
			sb.WriteByte('t')
		} else {
			sb.WriteByte('f')
		}
	case AccFin:
		writeFinInf(sb, "Fin", cond.Index, cond.Complement)
	case AccInf:
		writeFinInf(sb, "Inf", cond.Index, cond.Complement)
	case AccAnd:
		writeAcceptanceCond(sb, cond.Left, precAnd)
		sb.WriteString(" & ")
		writeAcceptanceCond(sb, cond.Right, precAnd+1)
	case AccOr:
		writeAcceptanceCond(sb, cond.Left, precOr)
		sb.WriteString(" | ")
		writeAcceptanceCond(sb, cond.Right, precOr+1)
	}
}

func writeFinInf(sb *strings.Builder, kind string, index int, complement bool) {
	sb.WriteString(kind)
	sb.WriteByte('(')
	if complement {
		sb.WriteByte('!')
	}
	sb.WriteString(strconv.Itoa(index))
	sb.WriteByte(')')
}

// writeQuoted renders a double-quoted string, escaping backslashes and
// quotes. This matches exactly what the lexer decodes.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
}
