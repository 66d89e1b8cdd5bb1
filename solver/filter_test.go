package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordList(ss ...string) []Word {
	out := make([]Word, 0, len(ss))
	for _, s := range ss {
		out = append(out, W(s))
	}
	return out
}

func testFilter(t *testing.T, candidates []Word, guess, fb string, expected ...string) {
	t.Helper()
	got := Filter(W(guess), FB(fb), candidates)
	assert.Equal(t, wordList(expected...), got)
}

func TestFilterExact(t *testing.T) {
	words := wordList("aaaaa", "abbbb")
	testFilter(t, words, "aazzz", "ggbbb", "aaaaa")
	testFilter(t, words, "azzzz", "gbbbb", "aaaaa", "abbbb")
}

func TestFilterPresent(t *testing.T) {
	words := wordList("aaaaa", "abbbb")
	testFilter(t, words, "bzzzz", "ybbbb", "abbbb")
}

func TestFilterNonExactPositionExcluded(t *testing.T) {
	// A yellow at position 0 rules out words carrying the letter there,
	// which would have produced a green.
	words := wordList("azzzz", "zazzz")
	testFilter(t, words, "axxxx", "ybbbb", "zazzz")
}

func TestFilterPresentLowerBound(t *testing.T) {
	// Guess has a twice, one green one yellow: survivors need a second a
	// outside the green position, and none where the yellow sat.
	words := wordList("aazzz", "azzzz", "azazz", "azzaz", "zzaaz")
	testFilter(t, words, "aaxxx", "gybbb", "azazz", "azzaz")
}

func TestFilterAbsentUpperBound(t *testing.T) {
	// Guess has a twice, one yellow one black: survivors contain exactly
	// one a, and not where the guess had it.
	words := wordList("zazzz", "zaazz", "zzzzz", "azzzz", "zzazz")
	testFilter(t, words, "aaxxx", "ybbbb", "zzazz")
}

func TestFilterAbsentMeansZeroWithoutConfirms(t *testing.T) {
	words := wordList("zzzzz", "azzzz", "zzzza")
	testFilter(t, words, "axxxx", "bbbbb", "zzzzz")
}

func TestFilterSpeedDuplicates(t *testing.T) {
	// speed against abide reports bbyby: exactly one e anywhere but
	// positions 2-3, at least one d anywhere but position 4, no s or p.
	words := wordList("abide", "audio", "elude", "dodge", "ended", "speed")
	fb := Score(W("speed"), W("abide"))
	require.Equal(t, FB("bbyby"), fb)
	got := Filter(W("speed"), fb, words)
	assert.Equal(t, wordList("abide", "dodge"), got)
}

func TestFilterUnproduciblePatternMatchesNothing(t *testing.T) {
	// With guess fdffb, a yellow on the third f alongside a black on the
	// first can't come out of any answer: the game colors the earliest
	// spare f first. afeec scores ybbbb, not bbybb.
	words := wordList("afeec", "efacc", "abide", "dodge")
	require.Equal(t, FB("ybbbb"), Score(W("fdffb"), W("afeec")))
	assert.Empty(t, Filter(W("fdffb"), FB("bbybb"), words))
}

func TestFilterMatchesScore(t *testing.T) {
	// Under a fixed guess, each pattern keeps exactly the words that would
	// have produced it and no others.
	words := wordList("fdffb", "afeec", "efacc", "speed", "ended", "dodge", "abide", "sassy")
	for _, guess := range words {
		for _, fb := range AllFeedbacks() {
			want := []Word{}
			for _, w := range words {
				if Score(guess, w) == fb {
					want = append(want, w)
				}
			}
			assert.Equal(t, want, Filter(guess, fb, words), "guess %s fb %s", guess, fb)
		}
	}
}

func TestFilterReturnsFreshSlice(t *testing.T) {
	words := wordList("aaaaa", "abbbb")
	got := Filter(W("aazzz"), FB("ggbbb"), words)
	require.Equal(t, wordList("aaaaa"), got)
	got[0] = W("zzzzz")
	assert.Equal(t, wordList("aaaaa", "abbbb"), words)
}

func TestFilterEndToEndCrane(t *testing.T) {
	// crazy carries an a at position 2, where the feedback demands no a:
	// nothing in the set is consistent.
	words := wordList("crane", "trace", "shale", "broad", "crazy")
	got := Filter(W("crane"), FB("ggbbg"), words)
	assert.Empty(t, got)
}

func TestFilterScoreRoundTrip(t *testing.T) {
	// Every candidate is consistent with the feedback it would itself
	// produce.
	words := wordList("speed", "abide", "erase", "sassy", "mossy", "crane", "crazy", "elude")
	for _, guess := range words {
		for _, answer := range words {
			got := Filter(guess, Score(guess, answer), words)
			assert.Contains(t, got, answer, "guess %s answer %s", guess, answer)
		}
	}
}

func TestFilterPartitionInvariant(t *testing.T) {
	// For a fixed guess every candidate matches exactly one of the 243
	// patterns, so the filtered sizes sum to the candidate count.
	words := wordList(
		"speed", "abide", "erase", "sassy", "mossy", "crane", "crazy",
		"elude", "aaaaa", "ababa", "zzzzz", "dodge", "ended", "trace",
	)
	for _, guess := range words {
		total := 0
		for _, fb := range AllFeedbacks() {
			total += len(Filter(guess, fb, words))
		}
		assert.Equal(t, len(words), total, "guess %s", guess)
	}
}

func TestFilterIdempotent(t *testing.T) {
	words := wordList("speed", "abide", "erase", "sassy", "crane", "crazy")
	guess, fb := W("speed"), FB("bbyby")
	once := Filter(guess, fb, words)
	twice := Filter(guess, fb, once)
	assert.Equal(t, once, twice)
}

func TestFilterMonotonic(t *testing.T) {
	words := wordList("speed", "abide", "erase", "sassy", "crane", "crazy")
	for _, guess := range words {
		for _, fb := range AllFeedbacks() {
			assert.LessOrEqual(t, len(Filter(guess, fb, words)), len(words))
		}
	}
}

func TestFilterSelfConsistent(t *testing.T) {
	words := wordList("speed", "abide", "erase", "sassy", "crane")
	for _, guess := range words {
		got := Filter(guess, FB("ggggg"), words)
		assert.Equal(t, wordList(guess.String()), got)
	}
}

func TestFilterEmptyCandidates(t *testing.T) {
	assert.Empty(t, Filter(W("crane"), FB("bbbbb"), nil))
}
