package solver

// MaxTurns is the turn budget of the standard game. Exhausting it is a loop
// decision for the orchestrator, not a candidate-set state.
const MaxTurns = 6

// Outcome is the terminal-state signal derived from the candidate set size.
type Outcome int

const (
	// OutcomeOpen means more than one candidate remains.
	OutcomeOpen Outcome = iota
	// OutcomeSolved means exactly one candidate remains.
	OutcomeSolved
	// OutcomeContradicted means no candidate is consistent with the
	// observations, e.g. a mistyped color string. It is a result, not an
	// error.
	OutcomeContradicted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeContradicted:
		return "contradicted"
	default:
		return "open"
	}
}

// Session owns the candidate set across the turns of one game. The set
// starts as the full dictionary and only ever shrinks; each observation
// replaces it with a freshly filtered slice.
type Session struct {
	candidates []Word
	ranker     *Ranker
}

// NewSession copies dictionary into a new session using ranker for its
// ranking passes.
func NewSession(dictionary []Word, ranker *Ranker) *Session {
	s := &Session{ranker: ranker}
	s.candidates = append(s.candidates, dictionary...)
	return s
}

// Candidates returns the current candidate set. Callers must not modify it.
func (s *Session) Candidates() []Word {
	return s.candidates
}

// Len returns the current candidate count.
func (s *Session) Len() int {
	return len(s.candidates)
}

// Observe narrows the candidate set by one guess/feedback observation and
// reports the resulting state.
func (s *Session) Observe(guess Word, fb Feedback) Outcome {
	s.candidates = Filter(guess, fb, s.candidates)
	return s.Outcome()
}

// Outcome reports the state of the current candidate set.
func (s *Session) Outcome() Outcome {
	switch len(s.candidates) {
	case 0:
		return OutcomeContradicted
	case 1:
		return OutcomeSolved
	default:
		return OutcomeOpen
	}
}

// Answer returns the unique remaining candidate when the session is solved.
func (s *Session) Answer() (Word, bool) {
	if len(s.candidates) != 1 {
		return Word{}, false
	}
	return s.candidates[0], true
}

// Rank scores the current candidates. A precomputed ranking loaded from a
// cache substitutes for this call on the first turn; both flow through the
// same Ranking type and are indistinguishable downstream.
func (s *Session) Rank() (Ranking, error) {
	return s.ranker.Rank(s.candidates)
}

// RankProgress is Rank with a per-guess progress callback.
func (s *Session) RankProgress(progress func()) (Ranking, error) {
	return s.ranker.RankProgress(s.candidates, progress)
}
