package hoaparser

// LabelExpr is a Boolean formula labeling a state or edge. It is one of
// LabelBool, LabelAP, LabelAlias, LabelNot, LabelAnd, LabelOr.
type LabelExpr interface {
	isLabelExpr()
}

// LabelBool is the literal 't' or 'f'.
type LabelBool struct {
	Value bool
}

// LabelAP references a declared atomic proposition by index.
type LabelAP struct {
	Index int
}

// LabelAlias references a previously declared alias by name (without '@').
type LabelAlias struct {
	Name string
}

// LabelNot is the negation of a sub-expression.
type LabelNot struct {
	Expr LabelExpr
}

// LabelAnd is a conjunction. The parser is left-associative, so chains nest
// on the left.
type LabelAnd struct {
	Left, Right LabelExpr
}

// LabelOr is a disjunction. Binds weaker than LabelAnd.
type LabelOr struct {
	Left, Right LabelExpr
}

func (LabelBool) isLabelExpr()  {}
func (LabelAP) isLabelExpr()    {}
func (LabelAlias) isLabelExpr() {}
func (LabelNot) isLabelExpr()   {}
func (LabelAnd) isLabelExpr()   {}
func (LabelOr) isLabelExpr()    {}

// AcceptanceCond is an acceptance-condition formula. It is one of AccBool,
// AccFin, AccInf, AccAnd, AccOr. There is no negation operator at this
// grammar layer; complementation exists only on the Fin/Inf atoms.
type AcceptanceCond interface {
	isAcceptanceCond()
}

// AccBool is the literal 't' or 'f'.
type AccBool struct {
	Value bool
}

// AccFin is Fin(i) or, when Complement is set, Fin(!i).
type AccFin struct {
	Index      int
	Complement bool
}

// AccInf is Inf(i) or, when Complement is set, Inf(!i).
type AccInf struct {
	Index      int
	Complement bool
}

// AccAnd is a conjunction of acceptance conditions.
type AccAnd struct {
	Left, Right AcceptanceCond
}

// AccOr is a disjunction of acceptance conditions.
type AccOr struct {
	Left, Right AcceptanceCond
}

func (AccBool) isAcceptanceCond() {}
func (AccFin) isAcceptanceCond()  {}
func (AccInf) isAcceptanceCond()  {}
func (AccAnd) isAcceptanceCond()  {}
func (AccOr) isAcceptanceCond()   {}

// ParityOrder is the min/max half of a parity acceptance name.
type ParityOrder string

const (
	ParityMin ParityOrder = "min"
	ParityMax ParityOrder = "max"
)

// ParityKind is the even/odd half of a parity acceptance name.
type ParityKind string

const (
	ParityEven ParityKind = "even"
	ParityOdd  ParityKind = "odd"
)

// AcceptanceName is the descriptor carried by an acc-name: header. It is a
// closed catalogue; both the parser and the serializer match it exhaustively.
// It is purely descriptive metadata and is never checked against the
// Acceptance: formula.
type AcceptanceName interface {
	isAcceptanceName()
}

// BuchiName is 'Buchi'.
type BuchiName struct{}

// CoBuchiName is 'co-Buchi'.
type CoBuchiName struct{}

// GenBuchiName is 'generalized-Buchi n'.
type GenBuchiName struct {
	Count int
}

// GenCoBuchiName is 'generalized-co-Buchi n'.
type GenCoBuchiName struct {
	Count int
}

// StreettName is 'Streett n'.
type StreettName struct {
	Pairs int
}

// RabinName is 'Rabin n'.
type RabinName struct {
	Pairs int
}

// GenRabinName is 'generalized-Rabin n s1 ... sn'. Sizes has exactly Pairs
// entries.
type GenRabinName struct {
	Pairs int
	Sizes []int
}

// ParityName is 'parity (min|max) (even|odd) n'.
type ParityName struct {
	Order ParityOrder
	Kind  ParityKind
	Count int
}

// AllName is 'all'.
type AllName struct{}

// NoneName is 'none'.
type NoneName struct{}

func (BuchiName) isAcceptanceName()      {}
func (CoBuchiName) isAcceptanceName()    {}
func (GenBuchiName) isAcceptanceName()   {}
func (GenCoBuchiName) isAcceptanceName() {}
func (StreettName) isAcceptanceName()    {}
func (RabinName) isAcceptanceName()      {}
func (GenRabinName) isAcceptanceName()   {}
func (ParityName) isAcceptanceName()     {}
func (AllName) isAcceptanceName()        {}
func (NoneName) isAcceptanceName()       {}

// HeaderItem is a single header declaration. It is one of HeaderStates,
// HeaderAP, HeaderAlias, HeaderAcceptance, HeaderStart, HeaderTool,
// HeaderName, HeaderProperties, HeaderAccName. Items may repeat; repeated
// items accumulate as independent entries without merging.
type HeaderItem interface {
	isHeaderItem()
}

// HeaderStates is 'States: n'.
type HeaderStates struct {
	Count int
}

// HeaderAP is 'AP: n "p1" "p2" ...'. Count is the declared count used for
// range validation; it is not required to equal len(Names).
type HeaderAP struct {
	Count int
	Names []string
}

// HeaderAlias is 'Alias: @name expr'.
type HeaderAlias struct {
	Name string
	Expr LabelExpr
}

// HeaderAcceptance is 'Acceptance: n cond'. Sets is the declared
// acceptance-set count validating Fin/Inf indices inside Cond.
type HeaderAcceptance struct {
	Sets int
	Cond AcceptanceCond
}

// HeaderStart is 'Start: i1&i2&...'. A single item with several indices is a
// conjunctive start; separate Start items are independent.
type HeaderStart struct {
	States []int
}

// HeaderTool is 'tool: "name" ["version"]'. Version is empty when absent.
type HeaderTool struct {
	Name    string
	Version string
}

// HeaderName is 'name: "text"'.
type HeaderName struct {
	Text string
}

// HeaderProperties is 'properties: ident*'.
type HeaderProperties struct {
	Props []string
}

// HeaderAccName is 'acc-name: <descriptor>'.
type HeaderAccName struct {
	Name AcceptanceName
}

func (HeaderStates) isHeaderItem()     {}
func (HeaderAP) isHeaderItem()         {}
func (HeaderAlias) isHeaderItem()      {}
func (HeaderAcceptance) isHeaderItem() {}
func (HeaderStart) isHeaderItem()      {}
func (HeaderTool) isHeaderItem()       {}
func (HeaderName) isHeaderItem()       {}
func (HeaderProperties) isHeaderItem() {}
func (HeaderAccName) isHeaderItem()    {}

// Edge is one outgoing edge of a state record. Successors is a non-empty
// conjunction of target state indices; an edge with k successors denotes a
// joint transition to all k states. AccSig is nil when absent; a non-nil
// empty slice is a present-but-empty '{}' signature.
type Edge struct {
	Label      LabelExpr // nil when absent
	Successors []int     // len >= 1
	AccSig     []int     // nil when absent
}

// State is one state record from the body section.
type State struct {
	Label       LabelExpr // nil when absent
	Index       int
	Description string // empty when absent
	AccSig      []int  // nil when absent
	Edges       []Edge
}

// Document is a complete parsed HOA automaton: the header items in
// declaration order and the state records in body order.
type Document struct {
	Header []HeaderItem
	States []State
}

// StateByIndex returns the first state record with the given index, or nil.
// Body records may reference indices with no record; callers must handle nil.
func (d *Document) StateByIndex(i int) *State {
	for j := range d.States {
		if d.States[j].Index == i {
			return &d.States[j]
		}
	}
	return nil
}

// StartStates returns the union of all Start: header items, in declaration
// order, without deduplication.
func (d *Document) StartStates() []int {
	var starts []int
	for _, item := range d.Header {
		if s, ok := item.(HeaderStart); ok {
			starts = append(starts, s.States...)
		}
	}
	return starts
}

// APCount returns the declared atomic-proposition count and true, or 0 and
// false when no AP: header is present.
func (d *Document) APCount() (int, bool) {
	for _, item := range d.Header {
		if ap, ok := item.(HeaderAP); ok {
			return ap.Count, true
		}
	}
	return 0, false
}

// NumStates returns the declared States: count and true, or 0 and false when
// no States: header is present.
func (d *Document) NumStates() (int, bool) {
	for _, item := range d.Header {
		if s, ok := item.(HeaderStates); ok {
			return s.Count, true
		}
	}
	return 0, false
}
