package engine

import "encoding/binary"

// Fingerprint is an exact encoding of both decks' ordered contents. Two
// fingerprints are equal iff the decks they were taken from are equal.
type Fingerprint string

// FingerprintOf encodes each deck as a varint length followed by its cards
// as varints. The length prefix keeps the boundary between the decks
// unambiguous.
func FingerprintOf(d Decks) Fingerprint {
	buf := make([]byte, 0, 2*binary.MaxVarintLen64+d.Total()*2)
	for _, deck := range d {
		buf = binary.AppendUvarint(buf, uint64(deck.Len()))
		if deck == nil {
			continue
		}
		for _, c := range deck.cards {
			buf = binary.AppendVarint(buf, int64(c))
		}
	}
	return Fingerprint(buf)
}

// StateSet records the states a single game has started rounds in.
// Each game owns its own set; sub-games never share their parent's.
type StateSet struct {
	seen map[Fingerprint]struct{}
}

// NewStateSet creates an empty set.
func NewStateSet() *StateSet {
	return &StateSet{seen: make(map[Fingerprint]struct{})}
}

// Observe reports whether fp was already recorded, recording it if not.
func (s *StateSet) Observe(fp Fingerprint) bool {
	if _, ok := s.seen[fp]; ok {
		return true
	}
	s.seen[fp] = struct{}{}
	return false
}

// Len returns the number of distinct states recorded.
func (s *StateSet) Len() int {
	return len(s.seen)
}
