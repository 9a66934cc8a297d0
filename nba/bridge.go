package nba

import (
	"github.com/ReedOei/omega-automata/hoaparser"
)

// toolName is the tool identity stamped on documents produced by ToDocument.
const toolName = "omega-automata"

// FromDocument converts a parsed HOA document into an automaton over the
// document's 0-based state indices. A conjunctive edge with k successors
// becomes k separate transitions carrying the same label; the joint
// semantics is not representable here. A state is accepting iff its record
// carries an acceptance-set signature (the set's contents are discarded);
// the start set is the union of all Start: header items. No validation is
// performed: dangling successor indices silently become states with no
// record metadata.
func FromDocument(doc *hoaparser.Document) *Automaton[int, hoaparser.LabelExpr] {
	a := New[int, hoaparser.LabelExpr]()
	for _, st := range doc.States {
		a.AddState(st.Index)
		if st.AccSig != nil {
			a.MarkAccepting(st.Index)
		}
		for _, e := range st.Edges {
			for _, succ := range e.Successors {
				a.AddTransition(st.Index, e.Label, succ)
			}
		}
	}
	for _, s := range doc.StartStates() {
		a.MarkStart(s)
	}
	return a
}

// ToDocument converts an automaton into a Buchi HOA document. Every state is
// assigned the dense 0-based index derived from the automaton's stable state
// ordering. The header declares single-set Buchi acceptance and no atomic
// propositions; only generalized acceptance, aliases, and descriptive
// metadata are lost relative to the forward direction. Each start state
// becomes its own Start: item (a single conjunctive item would declare an
// alternating initial conjunction, not a start set).
func ToDocument[S comparable](a *Automaton[S, hoaparser.LabelExpr]) *hoaparser.Document {
	header := []hoaparser.HeaderItem{
		hoaparser.HeaderStates{Count: a.Len()},
	}
	for _, s := range a.States() {
		if a.IsStart(s) {
			header = append(header, hoaparser.HeaderStart{States: []int{a.Index(s) - 1}})
		}
	}
	header = append(header,
		hoaparser.HeaderAcceptance{Sets: 1, Cond: hoaparser.AccInf{Index: 0}},
		hoaparser.HeaderAccName{Name: hoaparser.BuchiName{}},
		hoaparser.HeaderTool{Name: toolName},
	)

	states := make([]hoaparser.State, 0, a.Len())
	for _, s := range a.States() {
		st := hoaparser.State{Index: a.Index(s) - 1}
		if a.IsAccepting(s) {
			st.AccSig = []int{0}
		}
		for _, tr := range a.Successors(s) {
			st.Edges = append(st.Edges, hoaparser.Edge{
				Label:      tr.Label,
				Successors: []int{a.Index(tr.Target) - 1},
			})
		}
		states = append(states, st)
	}

	return &hoaparser.Document{Header: header, States: states}
}
