// Package words loads the dictionaries and precomputed rankings the solver
// core is fed with.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	_ "embed"

	mapset "github.com/deckarep/golang-set"

	"github.com/mpurins/wordlehint/solver"
)

//go:embed words.txt
var defaultList string

// Load reads a whitespace-delimited word list. Every token must parse as a
// five-letter word; duplicates are dropped, keeping first-appearance order.
func Load(r io.Reader) ([]solver.Word, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	seen := mapset.NewThreadUnsafeSet()
	out := make([]solver.Word, 0, 1024)
	for sc.Scan() {
		w, err := solver.ParseWord(sc.Text())
		if err != nil {
			return nil, err
		}
		if !seen.Add(w) {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return out, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string) ([]solver.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded word list.
func Default() []solver.Word {
	ws, err := Load(strings.NewReader(defaultList))
	if err != nil {
		panic("embedded word list: " + err.Error())
	}
	return ws
}
