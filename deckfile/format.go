package deckfile

import (
	"strconv"
	"strings"

	"github.com/signalnine/crabcombat/engine"
)

// Format writes decks in the format Parse reads. Parse(Format(d)) yields
// decks equal to d.
func Format(decks engine.Decks) string {
	var b strings.Builder
	for i, player := range engine.Players {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(player.String())
		b.WriteString(":\n")
		for _, c := range decks[player].Cards() {
			b.WriteString(strconv.Itoa(int(c)))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
