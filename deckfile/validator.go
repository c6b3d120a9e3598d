package deckfile

import (
	"fmt"
	"strings"

	"github.com/signalnine/crabcombat/engine"
)

// ValidationError represents a deck validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate returns a list of validation errors (empty = valid).
func Validate(decks engine.Decks) []ValidationError {
	var errors []ValidationError

	// Check 0: there is at least one card to play. A single empty deck is
	// a finished game, won by the other player.
	if decks.Total() == 0 {
		errors = append(errors, ValidationError{
			Field:   "decks",
			Message: "both decks are empty",
		})
		return errors
	}

	owner := make(map[engine.Card]engine.Player)
	for _, player := range engine.Players {
		field := fieldFor(player)
		deck := decks[player]

		seen := make(map[engine.Card]bool)
		for _, c := range deck.Cards() {
			// Check 1: cards are positive ranks
			if c <= 0 {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("card %d is not positive", c),
				})
				continue
			}

			// Check 2: no card appears twice in one deck
			if seen[c] {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("card %d appears more than once", c),
				})
				continue
			}
			seen[c] = true

			// Check 3: no card is held by both players, since two equal
			// cards have no round winner
			if other, ok := owner[c]; ok && other != player {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("card %d is also held by %s", c, other),
				})
				continue
			}
			owner[c] = player
		}
	}

	return errors
}

// Join renders validation errors as one message.
func Join(errs []ValidationError) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func fieldFor(p engine.Player) string {
	return fmt.Sprintf("decks.%s", strings.ToLower(strings.ReplaceAll(p.String(), " ", "_")))
}
