package nba

import (
	"testing"

	"github.com/ReedOei/omega-automata/hoaparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDocument(t *testing.T) {
	src := "HOA: v1\nStates: 3\nStart: 0\nStart: 2\nAP: 1 \"a\"\nAcceptance: 1 Inf(0)\n--BODY--\n" +
		"State: 0\n[0] 1&2\n" +
		"State: 1 {0}\n[!0] 1\n" +
		"State: 2 {}\n" +
		"--END--\n"
	doc, err := hoaparser.Parse([]byte(src))
	require.NoError(t, err)

	a := FromDocument(doc)
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.IsStart(0))
	assert.True(t, a.IsStart(2))
	assert.False(t, a.IsStart(1))

	// Accepting iff the record carries a signature, even an empty one.
	assert.False(t, a.IsAccepting(0))
	assert.True(t, a.IsAccepting(1))
	assert.True(t, a.IsAccepting(2))

	// The conjunctive edge 1&2 expands to two transitions with the same label.
	succs := a.Successors(0)
	require.Len(t, succs, 2)
	assert.Equal(t, hoaparser.LabelAP{Index: 0}, succs[0].Label)
	assert.Equal(t, 1, succs[0].Target)
	assert.Equal(t, hoaparser.LabelAP{Index: 0}, succs[1].Label)
	assert.Equal(t, 2, succs[1].Target)
}

func TestFromDocumentDanglingSuccessor(t *testing.T) {
	// The bridge performs no validation: a dangling successor silently
	// becomes a state with no record metadata.
	doc, err := hoaparser.Parse([]byte("HOA: v1\n--BODY--\nState: 0\n5\n--END--\n"))
	require.NoError(t, err)

	a := FromDocument(doc)
	assert.Equal(t, 2, a.Len())
	assert.False(t, a.IsAccepting(5))
	assert.Empty(t, a.Successors(5))
}

func TestToDocumentBuchiProjection(t *testing.T) {
	a := New[string, hoaparser.LabelExpr]()
	a.AddState("s0")
	a.AddState("s1")
	a.MarkStart("s0")
	a.MarkAccepting("s1")
	a.AddTransition("s0", hoaparser.LabelBool{Value: true}, "s1")

	doc := ToDocument(a)
	assert.Equal(t, []hoaparser.HeaderItem{
		hoaparser.HeaderStates{Count: 2},
		hoaparser.HeaderStart{States: []int{0}},
		hoaparser.HeaderAcceptance{Sets: 1, Cond: hoaparser.AccInf{Index: 0}},
		hoaparser.HeaderAccName{Name: hoaparser.BuchiName{}},
		hoaparser.HeaderTool{Name: "omega-automata"},
	}, doc.Header)

	require.Len(t, doc.States, 2)
	assert.Equal(t, 0, doc.States[0].Index)
	assert.Nil(t, doc.States[0].AccSig)
	require.Len(t, doc.States[0].Edges, 1)
	assert.Equal(t, hoaparser.Edge{
		Label:      hoaparser.LabelBool{Value: true},
		Successors: []int{1},
	}, doc.States[0].Edges[0])

	assert.Equal(t, 1, doc.States[1].Index)
	assert.Equal(t, []int{0}, doc.States[1].AccSig)
	assert.Empty(t, doc.States[1].Edges)
}

func TestBridgeIdempotence(t *testing.T) {
	a := New[string, hoaparser.LabelExpr]()
	a.AddState("s0")
	a.AddState("s1")
	a.MarkStart("s0")
	a.MarkAccepting("s1")
	label := hoaparser.LabelNot{Expr: hoaparser.LabelAP{Index: 0}}
	a.AddTransition("s0", label, "s1")

	back := FromDocument(ToDocument(a))

	// Isomorphic under the index mapping: same state count, same start and
	// accept membership, same transition label.
	assert.Equal(t, a.Len(), back.Len())
	for _, s := range a.States() {
		idx := a.Index(s) - 1
		assert.Equal(t, a.IsStart(s), back.IsStart(idx), "start membership of %v", s)
		assert.Equal(t, a.IsAccepting(s), back.IsAccepting(idx), "accept membership of %v", s)
	}
	succs := back.Successors(0)
	require.Len(t, succs, 1)
	assert.Equal(t, label, succs[0].Label)
	assert.Equal(t, 1, succs[0].Target)
}

func TestBridgeDocumentRoundTripThroughText(t *testing.T) {
	// Document produced by the bridge must serialize and re-parse cleanly.
	a := New[int, hoaparser.LabelExpr]()
	a.MarkStart(10)
	a.MarkAccepting(20)
	a.AddTransition(10, hoaparser.LabelBool{Value: true}, 20)
	a.AddTransition(20, nil, 20)

	doc := ToDocument(a)
	doc2, err := hoaparser.Parse(hoaparser.Serialize(doc))
	require.NoError(t, err)
	assert.Equal(t, doc, doc2)
}
