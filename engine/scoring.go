package engine

// ScoreCards weights each card by its distance from the bottom: the bottom
// card counts once, the top card counts len(cards) times.
//
// Example: [9, 5, 2] (top first) scores 9*3 + 5*2 + 2*1 = 39.
func ScoreCards(cards []Card) int {
	score := 0
	n := len(cards)
	for i, c := range cards {
		score += int(c) * (n - i)
	}
	return score
}
