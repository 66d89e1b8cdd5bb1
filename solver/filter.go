package solver

// Filter returns the subset of candidates that are consistent with observing
// fb when guess is compared against them as the answer. The result is a new
// slice preserving candidate order; candidates is never modified.
//
// The consistency rules match the color assignment of Score, including the
// duplicate-letter cases: a word survives when it carries the guess letter at
// every green position, avoids the guess letter at every non-green position,
// holds at least as many copies of each letter as came back green or yellow,
// and no more than that for letters that also came back black.
func Filter(guess Word, fb Feedback, candidates []Word) []Word {
	return NewMatcher(candidates).Filter(guess, fb)
}
