package game

import (
	"errors"
	"fmt"

	"github.com/signalnine/crabcombat/engine"
)

// ErrCombatCycle is returned when plain Combat returns to a state it has
// already played from. Without the recursive variant's repeat rule such a
// game never ends.
var ErrCombatCycle = errors.New("combat game repeats without end")

// CombatGame represents the game state for plain Combat
type CombatGame struct {
	Decks   engine.Decks
	Rounds  int
	seen    *engine.StateSet
	tension *engine.TensionMetrics
}

// NewCombatGame creates a game over a copy of decks.
func NewCombatGame(decks engine.Decks) *CombatGame {
	return &CombatGame{
		Decks:   decks.Clone(),
		seen:    engine.NewStateSet(),
		tension: engine.NewTensionMetrics(),
	}
}

// PlayRound plays one round. It is a no-op once the game is over.
func (g *CombatGame) PlayRound() error {
	if g.IsGameOver() {
		return nil
	}

	// Observation only: plain Combat has no repeat rule.
	if g.seen.Observe(engine.FingerprintOf(g.Decks)) {
		return fmt.Errorf("%w: state after round %d seen before", ErrCombatCycle, g.Rounds)
	}

	drawn, err := drawBoth(g.Decks)
	if err != nil {
		return err
	}
	winner, err := HigherCard(drawn)
	if err != nil {
		return fmt.Errorf("round %d: %w", g.Rounds+1, err)
	}
	collect(g.Decks, winner, drawn)
	g.tension.Update(g.Decks)

	g.Rounds++
	return nil
}

// IsGameOver checks if game has ended
func (g *CombatGame) IsGameOver() bool {
	_, over := terminal(g.Decks)
	return over
}

// Winner returns the seat holding every card, if the game is over.
func (g *CombatGame) Winner() (engine.Player, bool) {
	return terminal(g.Decks)
}

// Result returns the outcome of a finished game.
func (g *CombatGame) Result() (Result, bool) {
	winner, over := g.Winner()
	if !over {
		return Result{}, false
	}
	return newResult(g.Decks, winner, g.tension), true
}

// PlayCombat plays a complete game of plain Combat. decks is not modified.
func PlayCombat(decks engine.Decks) (Result, error) {
	game := NewCombatGame(decks)

	for !game.IsGameOver() {
		if err := game.PlayRound(); err != nil {
			return Result{}, err
		}
	}

	res, _ := game.Result()
	return res, nil
}
