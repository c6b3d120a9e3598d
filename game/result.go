// Package game implements the Combat and Recursive Combat engines.
package game

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/signalnine/crabcombat/engine"
)

// Result contains game outcome
type Result struct {
	Winner   engine.Player
	Score    int          // score of Deck
	Deck     *engine.Deck // winner's deck when the game ended
	Rounds   int          // rounds played in the top-level game only
	Games    int          // top-level game plus every sub-game
	MaxDepth int          // 1 when no sub-game was played
	Repeated bool         // top-level game ended on a repeated state
	Tension  engine.TensionMetrics
}

func newResult(decks engine.Decks, winner engine.Player, tension *engine.TensionMetrics) Result {
	deck := decks[winner].Clone()
	tension.Finalize(winner)
	return Result{
		Winner:   winner,
		Score:    deck.Score(),
		Deck:     deck,
		Rounds:   tension.Rounds,
		Games:    1,
		MaxDepth: 1,
		Tension:  *tension,
	}
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
