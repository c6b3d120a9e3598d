package game

import (
	"errors"
	"fmt"

	"github.com/signalnine/crabcombat/engine"
)

// ErrEqualCards is returned when both players reveal the same rank. The
// rules give no tie-break, so such decks are rejected rather than guessed at.
var ErrEqualCards = errors.New("both players drew the same card")

// ruling is the outcome of resolving one round: either a winner, or the
// instruction to settle the round with a sub-game.
type ruling struct {
	winner  engine.Player
	subGame bool
}

// HigherCard returns the seat holding the larger of the two drawn cards.
func HigherCard(drawn [engine.NumPlayers]engine.Card) (engine.Player, error) {
	switch {
	case drawn[engine.PlayerOne] > drawn[engine.PlayerTwo]:
		return engine.PlayerOne, nil
	case drawn[engine.PlayerTwo] > drawn[engine.PlayerOne]:
		return engine.PlayerTwo, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrEqualCards, drawn[engine.PlayerOne])
	}
}

// RecursionApplies reports whether each player has at least as many cards
// left (after the draw) as the value of the card they drew.
func RecursionApplies(drawn [engine.NumPlayers]engine.Card, decks engine.Decks) bool {
	for _, p := range engine.Players {
		if decks[p].Len() < int(drawn[p]) {
			return false
		}
	}
	return true
}

// resolveRound decides one round from the drawn cards and the post-draw decks.
func resolveRound(drawn [engine.NumPlayers]engine.Card, decks engine.Decks, recursive bool) (ruling, error) {
	if recursive && RecursionApplies(drawn, decks) {
		return ruling{subGame: true}, nil
	}
	winner, err := HigherCard(drawn)
	if err != nil {
		return ruling{}, err
	}
	return ruling{winner: winner}, nil
}

// subGameDecks carves the truncated copies a sub-game is played with.
func subGameDecks(drawn [engine.NumPlayers]engine.Card, decks engine.Decks) (engine.Decks, error) {
	var sub engine.Decks
	for _, p := range engine.Players {
		d, err := decks[p].TruncateCopy(int(drawn[p]))
		if err != nil {
			return engine.Decks{}, fmt.Errorf("sub-game deck for %s: %w", p, err)
		}
		sub[p] = d
	}
	return sub, nil
}

// collect gives both drawn cards to the round winner, winner's card first.
func collect(decks engine.Decks, winner engine.Player, drawn [engine.NumPlayers]engine.Card) {
	decks[winner].Push(drawn[winner])
	decks[winner].Push(drawn[winner.Opponent()])
}

// drawBoth takes the top card from each deck.
func drawBoth(decks engine.Decks) ([engine.NumPlayers]engine.Card, error) {
	var drawn [engine.NumPlayers]engine.Card
	for _, p := range engine.Players {
		c, err := decks[p].Draw()
		if err != nil {
			return drawn, fmt.Errorf("%s: %w", p, err)
		}
		drawn[p] = c
	}
	return drawn, nil
}

// terminal reports the winner if one deck is empty.
func terminal(decks engine.Decks) (engine.Player, bool) {
	switch {
	case decks[engine.PlayerTwo].IsEmpty():
		return engine.PlayerOne, true
	case decks[engine.PlayerOne].IsEmpty():
		return engine.PlayerTwo, true
	}
	return 0, false
}
