package nba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomatonStableIndices(t *testing.T) {
	a := New[string, string]()
	a.AddState("q0")
	a.AddState("q1")
	a.AddState("q0") // repeat insertion must not move anything

	assert.Equal(t, []string{"q0", "q1"}, a.States())
	assert.Equal(t, 1, a.Index("q0"))
	assert.Equal(t, 2, a.Index("q1"))
	assert.Equal(t, 0, a.Index("missing"))
	assert.Equal(t, 2, a.Len())
}

func TestAutomatonTransitionsRegisterEndpoints(t *testing.T) {
	a := New[string, string]()
	a.AddTransition("q0", "a", "q1")
	a.AddTransition("q0", "b", "q0")

	assert.Equal(t, 2, a.Len())
	succs := a.Successors("q0")
	assert.Equal(t, []Transition[string, string]{
		{Label: "a", Target: "q1"},
		{Label: "b", Target: "q0"},
	}, succs)
	assert.Empty(t, a.Successors("q1"))
}

func TestAutomatonStartAndAcceptSets(t *testing.T) {
	a := New[int, string]()
	a.MarkStart(1)
	a.MarkAccepting(2)

	assert.True(t, a.IsStart(1))
	assert.False(t, a.IsStart(2))
	assert.True(t, a.IsAccepting(2))
	assert.False(t, a.IsAccepting(1))
	// Marking registers the state too.
	assert.Equal(t, []int{1, 2}, a.States())
}
