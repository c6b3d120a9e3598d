// Package engine provides the deck primitives shared by the Combat game variants.
package engine

import (
	"errors"
	"fmt"
)

// Card is a card rank. Valid cards are positive.
type Card int

// Player identifies a seat. The zero value is Player One.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// NumPlayers is fixed: Combat is always heads-up.
const NumPlayers = 2

// Players lists both seats in seat order.
var Players = [NumPlayers]Player{PlayerOne, PlayerTwo}

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

var (
	// ErrEmptyDeck is returned when drawing from a deck with no cards.
	// Engines check emptiness before drawing, so seeing it means an engine bug.
	ErrEmptyDeck = errors.New("draw from empty deck")

	// ErrTruncate is returned when a truncated copy asks for more cards than the deck holds.
	ErrTruncate = errors.New("truncate length out of range")
)

// Decks is the ordered pair of decks, indexed by Player.
type Decks [NumPlayers]*Deck

// NewDecks builds a pair of decks from two card lists, front first.
func NewDecks(one, two []Card) Decks {
	return Decks{NewDeck(one...), NewDeck(two...)}
}

// Of returns the deck held by p.
func (d Decks) Of(p Player) *Deck {
	return d[p]
}

// Clone creates a deep copy. The copy shares no storage with d.
func (d Decks) Clone() Decks {
	var out Decks
	for i, deck := range d {
		if deck != nil {
			out[i] = deck.Clone()
		} else {
			out[i] = NewDeck()
		}
	}
	return out
}

// Total returns the number of cards across both decks.
func (d Decks) Total() int {
	total := 0
	for _, deck := range d {
		if deck != nil {
			total += deck.Len()
		}
	}
	return total
}

// Equal reports whether both decks hold identical sequences.
func (d Decks) Equal(other Decks) bool {
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
