package solver

import (
	"bytes"
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// patternCount is 3^WordLen, the size of the full feedback enumeration.
const patternCount = 243

// allFeedbacks enumerates every possible feedback pattern. Built once at
// startup, read-only afterwards. Some patterns can never be produced by a
// real guess/answer pair; they simply match nothing during ranking.
var allFeedbacks [patternCount]Feedback

func init() {
	marks := [3]Mark{Absent, Present, Exact}
	for n := range allFeedbacks {
		v := n
		for i := 0; i < WordLen; i++ {
			allFeedbacks[n][i] = marks[v%3]
			v /= 3
		}
	}
}

// AllFeedbacks returns the full 243-pattern enumeration. The returned slice
// is shared; treat it as read-only.
func AllFeedbacks() []Feedback {
	return allFeedbacks[:]
}

// Entry is one ranked guess: the word and the expected number of candidates
// that would remain after observing its feedback. Lower is more informative.
type Entry struct {
	Word     Word
	Expected float64
}

// Ranking is a list of entries sorted ascending by Expected, ties broken by
// word order.
type Ranking []Entry

// Ranker evaluates candidate guesses on a fixed-size pool of goroutines. A
// Ranker is created once per session by the orchestrator and is safe for
// sequential reuse across turns.
type Ranker struct {
	workers int
}

// NewRanker returns a ranker running workers goroutines per pass. A value
// below 1 selects one per CPU.
func NewRanker(workers int) *Ranker {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Ranker{workers: workers}
}

// Rank scores every word in candidates as a guess against the full feedback
// enumeration and returns the sorted ranking. An empty candidate set yields
// an empty ranking.
func (r *Ranker) Rank(candidates []Word) (Ranking, error) {
	return r.RankProgress(candidates, nil)
}

// RankProgress is Rank with a per-guess completion callback, used for
// progress reporting. The callback may be invoked from multiple goroutines.
func (r *Ranker) RankProgress(candidates []Word, progress func()) (Ranking, error) {
	if len(candidates) == 0 {
		return Ranking{}, nil
	}
	m := NewMatcher(candidates)
	entries := make(Ranking, len(candidates))

	// Every job is queued up front so a dying worker can never wedge the
	// dispatch. Workers share only the matcher and the candidate list, both
	// read-only for the duration of the pass; each writes its own slot in
	// entries, so the single join below is the only synchronization needed.
	jobs := make(chan int, len(candidates))
	for g := range candidates {
		jobs <- g
	}
	close(jobs)

	errs := make(chan error, r.workers)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					errs <- fmt.Errorf("ranking worker: %v", p)
				}
			}()
			for g := range jobs {
				entries[g] = Entry{
					Word:     candidates[g],
					Expected: expectedRemaining(m, candidates[g]),
				}
				if progress != nil {
					progress()
				}
			}
		}()
	}
	wg.Wait()

	// A failed worker poisons the whole pass: a missing score would corrupt
	// the sort, so no partial ranking is returned. One error is enough to
	// abort; anything the other workers sent stays in the buffer and is
	// dropped with it.
	select {
	case err := <-errs:
		return nil, err
	default:
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Expected != entries[j].Expected {
			return entries[i].Expected < entries[j].Expected
		}
		return bytes.Compare(entries[i].Word[:], entries[j].Word[:]) < 0
	})
	return entries, nil
}

// expectedRemaining is the probability-weighted candidate count surviving
// guess: sum over all patterns f of (n_f/|C|)*n_f, where n_f is how many
// candidates are consistent with f. The n_f always sum to |C| because every
// candidate produces exactly one pattern for a fixed guess.
func expectedRemaining(m *Matcher, guess Word) float64 {
	total := float64(m.Len())
	sum := 0.0
	for _, fb := range allFeedbacks {
		n := float64(m.Count(guess, fb))
		sum += n / total * n
	}
	return sum
}
