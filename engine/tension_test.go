package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTensionMetrics(t *testing.T) {
	tm := NewTensionMetrics()

	assert.Equal(t, -1, tm.currentLeader)
	assert.Equal(t, 1.0, tm.ClosestMargin)
	assert.Empty(t, tm.leaderHistory)
}

func TestCardLeader(t *testing.T) {
	assert.Equal(t, 0, CardLeader(NewDecks([]Card{1, 2}, []Card{3})))
	assert.Equal(t, 1, CardLeader(NewDecks([]Card{1}, []Card{2, 3})))
	assert.Equal(t, -1, CardLeader(NewDecks([]Card{1}, []Card{2})))
}

func TestCardMargin(t *testing.T) {
	assert.InDelta(t, 0.2, CardMargin(NewDecks([]Card{1, 2, 3}, []Card{4, 5})), 1e-9)
	assert.Equal(t, 0.0, CardMargin(NewDecks(nil, nil)))
	assert.Equal(t, 1.0, CardMargin(NewDecks([]Card{1}, nil)))
}

func TestTensionMetrics_LeadChanges(t *testing.T) {
	tm := NewTensionMetrics()

	tm.Update(NewDecks([]Card{1, 2, 3}, []Card{4})) // one leads
	tm.Update(NewDecks([]Card{1, 2}, []Card{3, 4})) // level
	tm.Update(NewDecks([]Card{1}, []Card{2, 3, 4})) // two leads
	tm.Update(NewDecks(nil, []Card{1, 2, 3, 4}))    // two wins
	tm.Finalize(PlayerTwo)

	assert.Equal(t, 1, tm.LeadChanges, "a level round does not count as a change")
	assert.Equal(t, 3, tm.DecisiveRound)
	assert.Equal(t, 0.0, tm.ClosestMargin)
	assert.Equal(t, 4, tm.Rounds)
}

func TestTensionMetrics_NoPermanentLead(t *testing.T) {
	tm := NewTensionMetrics()

	tm.Update(NewDecks([]Card{1}, []Card{2, 3}))
	tm.Finalize(PlayerOne)

	assert.Equal(t, 0, tm.DecisiveRound)
}
