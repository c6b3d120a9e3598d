package engine

import (
	"strconv"
	"strings"
)

// Deck is an ordered pile of cards. The front is the next card drawn; won
// cards go to the back.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck holding cards, first argument on top.
func NewDeck(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return d.Len() == 0
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if d.IsEmpty() {
		return 0, ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Push appends a card to the bottom of the deck.
func (d *Deck) Push(c Card) {
	d.cards = append(d.cards, c)
}

// TruncateCopy returns a new deck holding the first n cards. d is not modified.
func (d *Deck) TruncateCopy(n int) (*Deck, error) {
	if n < 0 || n > d.Len() {
		return nil, ErrTruncate
	}
	return NewDeck(d.cards[:n]...), nil
}

// Clone creates a deep copy of the deck.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return NewDeck()
	}
	return NewDeck(d.cards...)
}

// Cards returns a copy of the deck contents, front first.
func (d *Deck) Cards() []Card {
	if d == nil {
		return nil
	}
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Equal reports whether two decks hold the same cards in the same order.
func (d *Deck) Equal(other *Deck) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i := 0; i < d.Len(); i++ {
		if d.cards[i] != other.cards[i] {
			return false
		}
	}
	return true
}

// Score returns the deck's Combat score.
func (d *Deck) Score() int {
	if d == nil {
		return 0
	}
	return ScoreCards(d.cards)
}

func (d *Deck) String() string {
	var b strings.Builder
	for i, c := range d.Cards() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	return b.String()
}
