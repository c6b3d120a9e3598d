package engine

// TensionMetrics tracks how the card-count lead moves during a game
type TensionMetrics struct {
	LeadChanges   int     // Number of times leader switched
	DecisiveRound int     // Round after which the winner led for good (0 = never)
	ClosestMargin float64 // Smallest normalized gap between the decks (0 = level)
	Rounds        int

	// Internal tracking
	currentLeader int   // Player index of current leader (-1 while nobody has led)
	leaderHistory []int // Leader after each round (-1 for level)
}

// NewTensionMetrics creates initialized tension tracker
func NewTensionMetrics() *TensionMetrics {
	return &TensionMetrics{
		currentLeader: -1,
		ClosestMargin: 1.0,
		leaderHistory: make([]int, 0, 100),
	}
}

// CardLeader returns the index of the player holding more cards, or -1 when level.
func CardLeader(d Decks) int {
	one, two := d[PlayerOne].Len(), d[PlayerTwo].Len()
	switch {
	case one > two:
		return int(PlayerOne)
	case two > one:
		return int(PlayerTwo)
	}
	return -1
}

// CardMargin returns the gap between the decks as a fraction of all cards.
func CardMargin(d Decks) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	gap := d[PlayerOne].Len() - d[PlayerTwo].Len()
	if gap < 0 {
		gap = -gap
	}
	return float64(gap) / float64(total)
}

// Update records the decks as they stand after a round.
func (m *TensionMetrics) Update(d Decks) {
	leader := CardLeader(d)
	if leader >= 0 {
		if m.currentLeader >= 0 && leader != m.currentLeader {
			m.LeadChanges++
		}
		m.currentLeader = leader
	}
	m.leaderHistory = append(m.leaderHistory, leader)

	if margin := CardMargin(d); margin < m.ClosestMargin {
		m.ClosestMargin = margin
	}
	m.Rounds++
}

// Finalize computes DecisiveRound once the winner is known.
func (m *TensionMetrics) Finalize(winner Player) {
	m.DecisiveRound = 0
	for i := len(m.leaderHistory) - 1; i >= 0 && m.leaderHistory[i] == int(winner); i-- {
		m.DecisiveRound = i + 1
	}
}
