package simulation

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/crabcombat/engine"
	"github.com/signalnine/crabcombat/game"
)

func exampleDecks() engine.Decks {
	return engine.NewDecks(
		[]engine.Card{9, 2, 6, 3, 1},
		[]engine.Card{5, 8, 4, 7, 10},
	)
}

func TestRunExample(t *testing.T) {
	decks := exampleDecks()

	report, err := Run(context.Background(), decks, Options{})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, VariantCombat, report.Combat.Variant)
	assert.Equal(t, engine.PlayerTwo, report.Combat.Result.Winner)
	assert.Equal(t, 306, report.Combat.Result.Score)
	assert.Equal(t, VariantRecursive, report.Recursive.Variant)
	assert.Equal(t, engine.PlayerTwo, report.Recursive.Result.Winner)
	assert.Equal(t, 291, report.Recursive.Result.Score)

	// Neither engine may touch the caller's decks.
	assert.True(t, decks.Equal(exampleDecks()))
}

func TestRunRejectsInvalidDecks(t *testing.T) {
	decks := engine.NewDecks([]engine.Card{4, 1}, []engine.Card{4, 2})

	_, err := Run(context.Background(), decks, Options{})
	assert.ErrorIs(t, err, ErrInvalidDecks)
	assert.Contains(t, err.Error(), "card 4 is also held by Player 1")
}

func TestRunCombatCycleStillPlaysRecursive(t *testing.T) {
	decks := engine.NewDecks([]engine.Card{43, 19}, []engine.Card{2, 29, 14})

	report, err := Run(context.Background(), decks, Options{})
	require.NoError(t, err)

	assert.ErrorIs(t, report.Combat.Err, game.ErrCombatCycle)
	assert.Equal(t, VariantCombat, report.Combat.Variant)
	assert.Nil(t, report.Combat.Result.Deck)

	assert.NoError(t, report.Recursive.Err)
	assert.Equal(t, engine.PlayerOne, report.Recursive.Result.Winner)
	assert.Equal(t, 105, report.Recursive.Result.Score)
	assert.True(t, report.Recursive.Result.Repeated)
}

func TestRunOneEmptyDeck(t *testing.T) {
	decks := engine.NewDecks(nil, []engine.Card{5, 3})

	report, err := Run(context.Background(), decks, Options{})
	require.NoError(t, err)

	for _, gr := range []GameReport{report.Combat, report.Recursive} {
		assert.Equal(t, engine.PlayerTwo, gr.Result.Winner, gr.Variant)
		assert.Equal(t, 13, gr.Result.Score, gr.Variant)
		assert.Equal(t, 0, gr.Result.Rounds, gr.Variant)
	}
}

func TestRunRejectsEmptyInput(t *testing.T) {
	_, err := Run(context.Background(), engine.NewDecks(nil, nil), Options{})
	assert.ErrorIs(t, err, ErrInvalidDecks)
}

func TestRunMaxDepth(t *testing.T) {
	_, err := Run(context.Background(), exampleDecks(), Options{MaxDepth: 1})
	assert.ErrorIs(t, err, game.ErrDepthExceeded)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, exampleDecks(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	report, err := Run(context.Background(), exampleDecks(), Options{Logger: l})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run="+report.RunID.String())
	assert.Contains(t, out, "variant=combat")
	assert.Contains(t, out, "variant=recursive")
	assert.Contains(t, out, "game 5 started")
}
