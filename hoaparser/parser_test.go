package hoaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = "HOA: v1\nStates: 1\nStart: 0\nAP: 1 \"a\"\nAcceptance: 1 Inf(0)\n--BODY--\nState: 0 {0}\n[0] 0\n--END--\n"

// headerOnly wraps header lines into a complete document with an empty body.
func headerOnly(lines string) string {
	return "HOA: v1\n" + lines + "--BODY--\n--END--\n"
}

func TestParseMinimalDocument(t *testing.T) {
	doc, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	require.Len(t, doc.Header, 4)
	assert.Equal(t, HeaderStates{Count: 1}, doc.Header[0])
	assert.Equal(t, HeaderStart{States: []int{0}}, doc.Header[1])
	assert.Equal(t, HeaderAP{Count: 1, Names: []string{"a"}}, doc.Header[2])
	assert.Equal(t, HeaderAcceptance{Sets: 1, Cond: AccInf{Index: 0}}, doc.Header[3])

	require.Len(t, doc.States, 1)
	st := doc.States[0]
	assert.Equal(t, 0, st.Index)
	assert.Nil(t, st.Label)
	assert.Equal(t, []int{0}, st.AccSig)
	require.Len(t, st.Edges, 1)
	assert.Equal(t, Edge{Label: LabelAP{Index: 0}, Successors: []int{0}}, st.Edges[0])
}

func TestParseCommentTolerance(t *testing.T) {
	commented := "HOA: v1\nStates: /* comment */ 1\nStart: 0\nAP: 1 \"a\"\nAcceptance: 1 Inf(0)\n--BODY--\nState: 0 {0}\n[0] 0\n--END--\n"

	plain, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)
	withComment, err := Parse([]byte(commented))
	require.NoError(t, err)
	assert.Equal(t, plain, withComment)
}

func TestParseAPOutOfRange(t *testing.T) {
	src := "HOA: v1\nStates: 1\nStart: 0\nAP: 1 \"a\"\nAcceptance: 1 Inf(0)\n--BODY--\nState: 0 {0}\n[5] 0\n--END--\n"
	_, err := Parse([]byte(src))
	require.Error(t, err)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "atomic proposition", rangeErr.What)
	assert.Equal(t, 5, rangeErr.Index)
	assert.Equal(t, 1, rangeErr.Count)
}

func TestParseAliasDeclarationOrder(t *testing.T) {
	// Declared before use: fine, including inside another alias body.
	doc, err := Parse([]byte(headerOnly("AP: 2 \"p\" \"q\"\nAlias: @a 0 & 1\nAlias: @b @a | !0\n")))
	require.NoError(t, err)
	require.Len(t, doc.Header, 3)
	assert.Equal(t, HeaderAlias{Name: "a", Expr: LabelAnd{Left: LabelAP{Index: 0}, Right: LabelAP{Index: 1}}}, doc.Header[1])
	assert.Equal(t, HeaderAlias{
		Name: "b",
		Expr: LabelOr{Left: LabelAlias{Name: "a"}, Right: LabelNot{Expr: LabelAP{Index: 0}}},
	}, doc.Header[2])
}

func TestParseUndeclaredAlias(t *testing.T) {
	_, err := Parse([]byte(headerOnly("AP: 1 \"p\"\nAlias: @b @a\n")))
	require.Error(t, err)

	var aliasErr *UndeclaredAliasError
	require.ErrorAs(t, err, &aliasErr)
	assert.Equal(t, "a", aliasErr.Name)
}

func TestParseSelfReferencingAlias(t *testing.T) {
	_, err := Parse([]byte(headerOnly("Alias: @a @a\n")))
	require.Error(t, err)
	var aliasErr *UndeclaredAliasError
	require.ErrorAs(t, err, &aliasErr)
}

func TestParseDuplicateAlias(t *testing.T) {
	_, err := Parse([]byte(headerOnly("Alias: @a t\nAlias: @a t\n")))
	require.Error(t, err)

	var dupErr *DuplicateAliasError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "a", dupErr.Name)
}

func TestParseLabelPrecedence(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("AP: 3 \"a\" \"b\" \"c\"\nAlias: @x 0 | !1 & 2\n")))
	require.NoError(t, err)

	// '!' binds tightest, then '&', then '|'.
	want := LabelOr{
		Left: LabelAP{Index: 0},
		Right: LabelAnd{
			Left:  LabelNot{Expr: LabelAP{Index: 1}},
			Right: LabelAP{Index: 2},
		},
	}
	assert.Equal(t, HeaderAlias{Name: "x", Expr: want}, doc.Header[1])
}

func TestParseLabelLeftAssociativity(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("AP: 3 \"a\" \"b\" \"c\"\nAlias: @x 0 & 1 & 2\n")))
	require.NoError(t, err)

	want := LabelAnd{
		Left:  LabelAnd{Left: LabelAP{Index: 0}, Right: LabelAP{Index: 1}},
		Right: LabelAP{Index: 2},
	}
	assert.Equal(t, HeaderAlias{Name: "x", Expr: want}, doc.Header[1])
}

func TestParseLabelParentheses(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("AP: 2 \"a\" \"b\"\nAlias: @x !(0 | 1)\n")))
	require.NoError(t, err)

	want := LabelNot{Expr: LabelOr{Left: LabelAP{Index: 0}, Right: LabelAP{Index: 1}}}
	assert.Equal(t, HeaderAlias{Name: "x", Expr: want}, doc.Header[1])
}

func TestParseAcceptanceCondition(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("Acceptance: 3 (Fin(!0) & Inf(1)) | Inf(2) | f\n")))
	require.NoError(t, err)

	want := HeaderAcceptance{
		Sets: 3,
		Cond: AccOr{
			Left: AccOr{
				Left: AccAnd{
					Left:  AccFin{Index: 0, Complement: true},
					Right: AccInf{Index: 1},
				},
				Right: AccInf{Index: 2},
			},
			Right: AccBool{Value: false},
		},
	}
	assert.Equal(t, want, doc.Header[0])
}

func TestParseAcceptanceNoNegationOperator(t *testing.T) {
	// Complementation only exists on the Fin/Inf atoms, never as a prefix.
	_, err := Parse([]byte(headerOnly("Acceptance: 1 !Inf(0)\n")))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseAcceptanceSetOutOfRange(t *testing.T) {
	_, err := Parse([]byte(headerOnly("Acceptance: 2 Fin(2)\n")))
	require.Error(t, err)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "acceptance set", rangeErr.What)
	assert.Equal(t, 2, rangeErr.Index)
	assert.Equal(t, 2, rangeErr.Count)
}

func TestParseStartConjunction(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("Start: 0&2&5\nStart: 1\n")))
	require.NoError(t, err)
	require.Len(t, doc.Header, 2)
	assert.Equal(t, HeaderStart{States: []int{0, 2, 5}}, doc.Header[0])
	assert.Equal(t, HeaderStart{States: []int{1}}, doc.Header[1])
	assert.Equal(t, []int{0, 2, 5, 1}, doc.StartStates())
}

func TestParseToolAndName(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("tool: \"ltl2ba\" \"1.3\"\nname: \"request automaton\"\ntool: \"handwritten\"\n")))
	require.NoError(t, err)
	require.Len(t, doc.Header, 3)
	assert.Equal(t, HeaderTool{Name: "ltl2ba", Version: "1.3"}, doc.Header[0])
	assert.Equal(t, HeaderName{Text: "request automaton"}, doc.Header[1])
	assert.Equal(t, HeaderTool{Name: "handwritten"}, doc.Header[2])
}

func TestParseProperties(t *testing.T) {
	doc, err := Parse([]byte(headerOnly("properties: trans-labels explicit-labels state-acc\nproperties:\n")))
	require.NoError(t, err)
	require.Len(t, doc.Header, 2)
	assert.Equal(t, HeaderProperties{Props: []string{"trans-labels", "explicit-labels", "state-acc"}}, doc.Header[0])
	assert.Equal(t, HeaderProperties{}, doc.Header[1])
}

func TestParseAccNames(t *testing.T) {
	tests := []struct {
		line string
		want AcceptanceName
	}{
		{"acc-name: Buchi", BuchiName{}},
		{"acc-name: co-Buchi", CoBuchiName{}},
		{"acc-name: generalized-Buchi 3", GenBuchiName{Count: 3}},
		{"acc-name: generalized-co-Buchi 2", GenCoBuchiName{Count: 2}},
		{"acc-name: Streett 4", StreettName{Pairs: 4}},
		{"acc-name: Rabin 2", RabinName{Pairs: 2}},
		{"acc-name: generalized-Rabin 2 1 3", GenRabinName{Pairs: 2, Sizes: []int{1, 3}}},
		{"acc-name: parity min even 5", ParityName{Order: ParityMin, Kind: ParityEven, Count: 5}},
		{"acc-name: parity max odd 2", ParityName{Order: ParityMax, Kind: ParityOdd, Count: 2}},
		{"acc-name: all", AllName{}},
		{"acc-name: none", NoneName{}},
	}
	for _, tt := range tests {
		doc, err := Parse([]byte(headerOnly(tt.line + "\n")))
		require.NoError(t, err, "input: %s", tt.line)
		require.Len(t, doc.Header, 1, "input: %s", tt.line)
		assert.Equal(t, HeaderAccName{Name: tt.want}, doc.Header[0], "input: %s", tt.line)
	}
}

func TestParseUnknownAccName(t *testing.T) {
	_, err := Parse([]byte(headerOnly("acc-name: Muller 2\n")))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseUnknownHeader(t *testing.T) {
	_, err := Parse([]byte(headerOnly("Colors: 3\n")))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseStateWithEverything(t *testing.T) {
	src := "HOA: v1\nStates: 2\nAP: 2 \"a\" \"b\"\nAcceptance: 2 Inf(0) & Inf(1)\n--BODY--\n" +
		"State: [0 & !1] 0 \"waiting\" {0 1}\n" +
		"[1] 1 {0}\n" +
		"0&1\n" +
		"State: 1\n" +
		"--END--\n"
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.States, 2)

	st := doc.States[0]
	assert.Equal(t, LabelAnd{Left: LabelAP{Index: 0}, Right: LabelNot{Expr: LabelAP{Index: 1}}}, st.Label)
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, "waiting", st.Description)
	assert.Equal(t, []int{0, 1}, st.AccSig)
	require.Len(t, st.Edges, 2)
	assert.Equal(t, Edge{Label: LabelAP{Index: 1}, Successors: []int{1}, AccSig: []int{0}}, st.Edges[0])
	assert.Equal(t, Edge{Successors: []int{0, 1}}, st.Edges[1])

	assert.Equal(t, State{Index: 1}, doc.States[1])
}

func TestParseForwardSuccessorReference(t *testing.T) {
	// Successors need not correspond to any parsed record.
	src := "HOA: v1\n--BODY--\nState: 0\n7\n--END--\n"
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []int{7}, doc.States[0].Edges[0].Successors)
	assert.Nil(t, doc.StateByIndex(7))
}

func TestParseEdgeWithoutSuccessorsFails(t *testing.T) {
	src := "HOA: v1\nAP: 1 \"a\"\n--BODY--\nState: 0\n[0]\n--END--\n"
	_, err := Parse([]byte(src))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseEmptyAccSig(t *testing.T) {
	src := "HOA: v1\n--BODY--\nState: 0 {}\n--END--\n"
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, doc.States[0].AccSig)
	assert.Empty(t, doc.States[0].AccSig)
}

func TestParseMissingEnvelope(t *testing.T) {
	cases := []string{
		"States: 1\n--BODY--\n--END--\n",    // no HOA: v1
		"HOA: v2\n--BODY--\n--END--\n",      // wrong version
		"HOA: v1\nStates: 1\n--END--\n",     // no --BODY--
		"HOA: v1\n--BODY--\nState: 0\n",     // no --END--
		"HOA: v1\n--BODY--\n--END-- junk\n", // trailing content
	}
	for _, src := range cases {
		_, err := Parse([]byte(src))
		require.Error(t, err, "input: %q", src)
	}
}

func TestParseErrorsCarryPosition(t *testing.T) {
	_, err := Parse([]byte("HOA: v1\nColors: 3\n--BODY--\n--END--\n"))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 2, synErr.Pos.Line)
}
