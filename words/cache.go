package words

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mpurins/wordlehint/solver"
)

// The first-turn ranking never changes for a fixed dictionary, so it can be
// computed once and cached as CSV: a header row, then word,expected rows in
// ranking order.

var rankingHeader = []string{"word", "expected_remaining"}

// LoadRanking reads a precomputed ranking. Words are validated; scores are
// taken verbatim and the order is trusted, so the result substitutes
// directly for a live ranking pass.
func LoadRanking(r io.Reader) (solver.Ranking, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ranking cache header: %w", err)
	}
	if header[0] != rankingHeader[0] || header[1] != rankingHeader[1] {
		return nil, fmt.Errorf("ranking cache header %v, want %v", header, rankingHeader)
	}
	var ranking solver.Ranking
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ranking cache: %w", err)
		}
		w, err := solver.ParseWord(rec[0])
		if err != nil {
			return nil, fmt.Errorf("ranking cache: %w", err)
		}
		expected, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ranking cache score %q: %w", rec[1], err)
		}
		ranking = append(ranking, solver.Entry{Word: w, Expected: expected})
	}
	return ranking, nil
}

// LoadRankingFile reads a precomputed ranking from path.
func LoadRankingFile(path string) (solver.Ranking, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ranking cache: %w", err)
	}
	defer f.Close()
	return LoadRanking(f)
}

// WriteRanking writes ranking in the cache format read by LoadRanking.
func WriteRanking(w io.Writer, ranking solver.Ranking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rankingHeader); err != nil {
		return fmt.Errorf("writing ranking cache: %w", err)
	}
	for _, e := range ranking {
		rec := []string{e.Word.String(), strconv.FormatFloat(e.Expected, 'f', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing ranking cache: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
