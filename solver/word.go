// Package solver implements the core of the word-guessing assistant: the
// constraint filter that shrinks a candidate set given a guess and its
// per-letter feedback, and the ranker that scores guesses by the expected
// number of candidates left after playing them.
package solver

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length of the game.
const WordLen = 5

var (
	ErrWordLen      = errors.New("word must be 5 letters")
	ErrWordChar     = errors.New("word must contain only letters a-z")
	ErrFeedbackLen  = errors.New("feedback must be 5 colors")
	ErrFeedbackChar = errors.New("feedback colors must be g, y or b")
)

// Word is a five letter lowercase word. Construct with ParseWord.
type Word [WordLen]byte

// ParseWord validates and case-normalizes s.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, fmt.Errorf("%w: %q", ErrWordLen, s)
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("%w: %q", ErrWordChar, s)
		}
		w[i] = c
	}
	return w, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Mark is the per-letter feedback color: g for an exact match, y for a letter
// present elsewhere, b for a letter not in the answer beyond what other
// positions confirm.
type Mark byte

const (
	Absent  Mark = 'b'
	Present Mark = 'y'
	Exact   Mark = 'g'
)

// Feedback is the five-color pattern reported for one guess. Construct with
// ParseFeedback or Score.
type Feedback [WordLen]Mark

// ParseFeedback validates a colors string like "bgybb".
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != WordLen {
		return fb, fmt.Errorf("%w: %q", ErrFeedbackLen, s)
	}
	for i := 0; i < WordLen; i++ {
		switch m := Mark(s[i]); m {
		case Absent, Present, Exact:
			fb[i] = m
		default:
			return fb, fmt.Errorf("%w: %q", ErrFeedbackChar, s)
		}
	}
	return fb, nil
}

// AllExact reports whether every position is green, i.e. the guess was the
// answer.
func (fb Feedback) AllExact() bool {
	for _, m := range fb {
		if m != Exact {
			return false
		}
	}
	return true
}

func (fb Feedback) String() string {
	b := make([]byte, WordLen)
	for i, m := range fb {
		b[i] = byte(m)
	}
	return string(b)
}
