// file: internal/report/audit.go
// version: 1.2.0
// guid: 3c1d7e0f-8a2b-4d4e-7f5a-6b0c1d2e3f4a

package report

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/mholtz/treeaudit/internal/audit"
)

// Audit report file names within the save directory.
const (
	CharFrequencyFile     = "character_frequency.csv"
	NonASCIIFrequencyFile = "non_ascii_frequency.csv"
	NonASCIIFilesFile     = "non_ascii_files.csv"
	ExtraDotFilesFile     = "extra_dot_files.csv"
)

// WriteAuditReports writes the four audit CSVs into saveDir. Each
// write is independent: a failure is collected and the remaining
// reports are still attempted. The returned slice holds one error per
// failed report, empty on full success.
func WriteAuditReports(saveDir string, tally *audit.Tally) []error {
	var errs []error

	write := func(name string, header []string, rows [][]string) {
		path := filepath.Join(saveDir, name)
		if err := WriteCSV(path, header, rows); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	write(CharFrequencyFile, []string{"character", "count"}, frequencyRows(tally.SortedChars()))
	write(NonASCIIFrequencyFile, []string{"character", "count"}, frequencyRows(tally.SortedNonASCII()))
	write(NonASCIIFilesFile, []string{"path"}, pathRows(tally.NonASCIIFiles))
	write(ExtraDotFilesFile, []string{"path"}, pathRows(tally.ExtraDotFiles))

	return errs
}

func frequencyRows(counts []audit.CharCount) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, cc := range counts {
		rows = append(rows, []string{string(cc.Char), strconv.Itoa(cc.Count)})
	}
	return rows
}

func pathRows(paths []string) [][]string {
	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		rows = append(rows, []string{p})
	}
	return rows
}
