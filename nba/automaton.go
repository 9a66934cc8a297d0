// Package nba provides a nondeterministic Buchi automaton representation and
// its bridge to and from HOA documents.
package nba

// Transition is one labeled transition to a target state.
type Transition[S comparable, L any] struct {
	Label  L
	Target S
}

// Automaton is a labeled transition system with start and accepting state
// sets. States keep insertion order, which fixes a stable dense index for
// every state (see Index). The zero value is not usable; call New.
type Automaton[S comparable, L any] struct {
	order  []S
	index  map[S]int // 1-based position in order
	succ   map[S][]Transition[S, L]
	start  map[S]bool
	accept map[S]bool
}

// New creates an empty automaton.
func New[S comparable, L any]() *Automaton[S, L] {
	return &Automaton[S, L]{
		index:  make(map[S]int),
		succ:   make(map[S][]Transition[S, L]),
		start:  make(map[S]bool),
		accept: make(map[S]bool),
	}
}

// AddState registers a state. Adding an existing state is a no-op, so the
// index mapping is stable across repeated insertions.
func (a *Automaton[S, L]) AddState(s S) {
	if _, ok := a.index[s]; ok {
		return
	}
	a.order = append(a.order, s)
	a.index[s] = len(a.order)
}

// AddTransition adds a labeled transition, registering both endpoints.
func (a *Automaton[S, L]) AddTransition(from S, label L, to S) {
	a.AddState(from)
	a.AddState(to)
	a.succ[from] = append(a.succ[from], Transition[S, L]{Label: label, Target: to})
}

// MarkStart adds a state to the start set.
func (a *Automaton[S, L]) MarkStart(s S) {
	a.AddState(s)
	a.start[s] = true
}

// MarkAccepting adds a state to the accepting set.
func (a *Automaton[S, L]) MarkAccepting(s S) {
	a.AddState(s)
	a.accept[s] = true
}

// States returns all states in insertion order. The returned slice is shared;
// callers must not modify it.
func (a *Automaton[S, L]) States() []S {
	return a.order
}

// Successors returns the outgoing transitions of a state in insertion order.
func (a *Automaton[S, L]) Successors(s S) []Transition[S, L] {
	return a.succ[s]
}

// IsStart reports whether s is a start state.
func (a *Automaton[S, L]) IsStart(s S) bool {
	return a.start[s]
}

// IsAccepting reports whether s is an accepting state.
func (a *Automaton[S, L]) IsAccepting(s S) bool {
	return a.accept[s]
}

// Index returns the 1-based dense index of a state, or 0 if the state is
// unknown. The mapping is total, stable, and injective over added states.
func (a *Automaton[S, L]) Index(s S) int {
	return a.index[s]
}

// Len returns the number of states.
func (a *Automaton[S, L]) Len() int {
	return len(a.order)
}
