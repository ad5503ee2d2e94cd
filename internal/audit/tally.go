// file: internal/audit/tally.go
// version: 1.2.0
// guid: 9e7f3a6b-4c8d-4f0a-3b1c-2d6e7f8a9b0c

package audit

import (
	"sort"
	"strings"

	"github.com/mholtz/treeaudit/internal/walker"
	"golang.org/x/text/unicode/norm"
)

// Tally accumulates character frequencies and name anomalies across a
// set of file names. It is a pure accumulator: the same entries in the
// same configuration always produce the same result.
type Tally struct {
	// Chars maps every character seen in an analyzed name to its
	// total occurrence count.
	Chars map[rune]int
	// NonASCII maps characters above code point 127 to their counts.
	NonASCII map[rune]int
	// NonASCIIFiles lists each file containing at least one
	// non-ASCII character, once, in discovery order.
	NonASCIIFiles []string
	// ExtraDotFiles lists files whose names carry more dots than the
	// extension separator allows, in discovery order.
	ExtraDotFiles []string

	FilesScanned int

	seenNonASCII map[string]bool
}

// NewTally returns an empty accumulator.
func NewTally() *Tally {
	return &Tally{
		Chars:        make(map[rune]int),
		NonASCII:     make(map[rune]int),
		seenNonASCII: make(map[string]bool),
	}
}

// Add folds one file into the tally. With includeExt the full base
// name is analyzed and a single extension-separator dot is permitted;
// without it the extension is stripped first and no dot is permitted.
func (t *Tally) Add(entry walker.FileEntry, includeExt bool) {
	name := entry.Name
	maxDots := 0
	if includeExt {
		maxDots = 1
	} else {
		name = strings.TrimSuffix(name, entry.Ext)
	}

	// Decomposed names (macOS NFD) tally like their composed forms.
	name = norm.NFC.String(name)

	t.FilesScanned++

	if strings.Count(name, ".") > maxDots {
		t.ExtraDotFiles = append(t.ExtraDotFiles, entry.Path)
	}

	for _, r := range name {
		t.Chars[r]++
		if r > 127 {
			t.NonASCII[r]++
			if !t.seenNonASCII[entry.Path] {
				t.seenNonASCII[entry.Path] = true
				t.NonASCIIFiles = append(t.NonASCIIFiles, entry.Path)
			}
		}
	}
}

// TotalCharacters returns the sum of all tally values, which equals
// the total character count across all analyzed names.
func (t *Tally) TotalCharacters() int {
	total := 0
	for _, count := range t.Chars {
		total += count
	}
	return total
}

// SortedChars returns the overall frequency table ordered by code point.
func (t *Tally) SortedChars() []CharCount {
	return sortCounts(t.Chars)
}

// SortedNonASCII returns the non-ASCII frequency table ordered by code point.
func (t *Tally) SortedNonASCII() []CharCount {
	return sortCounts(t.NonASCII)
}

// CharCount is one row of a frequency table.
type CharCount struct {
	Char  rune
	Count int
}

func sortCounts(m map[rune]int) []CharCount {
	counts := make([]CharCount, 0, len(m))
	for r, c := range m {
		counts = append(counts, CharCount{Char: r, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Char < counts[j].Char })
	return counts
}
