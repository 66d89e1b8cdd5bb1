package solver

// Score returns the feedback the game would report for guess against answer.
// Greens are assigned first; the remaining guess letters turn yellow left to
// right, each consuming one unmatched answer letter, so a letter repeated in
// the guess gets at most as many yellows as the answer has spare copies.
func Score(guess, answer Word) Feedback {
	var fb Feedback
	var spare [26]int
	for i, c := range answer {
		if guess[i] == c {
			fb[i] = Exact
		} else {
			fb[i] = Absent
			spare[c-'a']++
		}
	}
	for i, c := range guess {
		if fb[i] != Exact && spare[c-'a'] > 0 {
			fb[i] = Present
			spare[c-'a']--
		}
	}
	return fb
}
