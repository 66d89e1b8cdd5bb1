package solver

import (
	"github.com/bits-and-blooms/bitset"
)

// Matcher indexes a candidate list so that a guess/feedback observation can
// be evaluated as a handful of bitset operations instead of a per-word scan.
//
// positions[i][c] is the set of words whose letter at position i is c.
// counts[c][k] is the set of words containing at least k+1 occurrences of c.
//
// A Matcher is read-only after construction and safe to share across
// goroutines.
type Matcher struct {
	words     []Word
	positions [WordLen][26]*bitset.BitSet
	counts    [26][]*bitset.BitSet
}

// NewMatcher builds the position and count indexes for words. The slice is
// retained; it must not be modified while the matcher is in use.
func NewMatcher(words []Word) *Matcher {
	m := &Matcher{words: words}
	n := uint(len(words))
	for w, word := range words {
		var have [26]int
		for i, c := range word {
			ci := c - 'a'
			if m.positions[i][ci] == nil {
				m.positions[i][ci] = bitset.New(n)
			}
			m.positions[i][ci].Set(uint(w))
			have[ci]++
		}
		for ci, count := range have {
			for len(m.counts[ci]) < count {
				m.counts[ci] = append(m.counts[ci], bitset.New(n))
			}
			for k := 0; k < count; k++ {
				m.counts[ci][k].Set(uint(w))
			}
		}
	}
	return m
}

// Len returns the number of indexed words.
func (m *Matcher) Len() int {
	return len(m.words)
}

// match computes the set of indexed words consistent with observing fb after
// playing guess, as a bitset over word indexes.
func (m *Matcher) match(guess Word, fb Feedback) *bitset.BitSet {
	n := uint(len(m.words))

	// The color assignment hands out yellows left to right, so within a
	// letter's non-exact positions a yellow never follows a black. A pattern
	// breaking that can't come out of any answer and matches nothing; without
	// this check a duplicate-letter guess would count some words under more
	// than one pattern.
	var blackSeen [26]bool
	for i, mark := range fb {
		ci := guess[i] - 'a'
		switch mark {
		case Absent:
			blackSeen[ci] = true
		case Present:
			if blackSeen[ci] {
				return bitset.New(n)
			}
		}
	}

	ret := bitset.New(n).Complement()

	// Exact positions: only words sharing the guess letter there survive.
	for i, mark := range fb {
		if mark != Exact {
			continue
		}
		set := m.positions[i][guess[i]-'a']
		if set == nil {
			return bitset.New(n)
		}
		ret.InPlaceIntersection(set)
	}

	// Non-exact positions: the guess letter cannot sit there, or the
	// position would have come back green.
	for i, mark := range fb {
		if mark == Exact {
			continue
		}
		if set := m.positions[i][guess[i]-'a']; set != nil {
			ret.InPlaceDifference(set)
		}
	}

	// Letter count bounds. confirmed[c] is how many of the guess's c's were
	// marked green or yellow; the color assignment caps an absent-marked
	// letter at exactly that many occurrences, and yellows demand at least
	// that many.
	var confirmed [26]int
	var capped [26]bool
	var bounded [26]bool
	for i, mark := range fb {
		ci := guess[i] - 'a'
		switch mark {
		case Exact, Present:
			confirmed[ci]++
			bounded[ci] = true
		case Absent:
			capped[ci] = true
		}
	}
	for ci := 0; ci < 26; ci++ {
		if bounded[ci] {
			if len(m.counts[ci]) < confirmed[ci] {
				return bitset.New(n)
			}
			ret.InPlaceIntersection(m.counts[ci][confirmed[ci]-1])
		}
		if capped[ci] && len(m.counts[ci]) > confirmed[ci] {
			ret.InPlaceDifference(m.counts[ci][confirmed[ci]])
		}
	}
	return ret
}

// Filter returns the indexed words consistent with the observation, in index
// order, as a fresh slice.
func (m *Matcher) Filter(guess Word, fb Feedback) []Word {
	set := m.match(guess, fb)
	indices := make([]uint, set.Count())
	set.NextSetMany(0, indices)
	out := make([]Word, len(indices))
	for i, idx := range indices {
		out[i] = m.words[idx]
	}
	return out
}

// Count returns the number of indexed words consistent with the observation
// without materializing them. This is the hot path of ranking.
func (m *Matcher) Count(guess Word, fb Feedback) int {
	return int(m.match(guess, fb).Count())
}
