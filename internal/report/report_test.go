// file: internal/report/report_test.go
// version: 1.2.0
// guid: 4d2e8f1a-9b3c-4e5f-8a6b-7c1d2e3f4a5b

package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mholtz/treeaudit/internal/audit"
	"github.com/mholtz/treeaudit/internal/digest"
	"github.com/mholtz/treeaudit/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVBasic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteCSV(path, []string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}})
	require.NoError(t, err)

	rows := readCSV(t, path)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}, rows)
}

func TestWriteCSVQuotesDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quoted.csv")
	require.NoError(t, WriteCSV(path, []string{"path"}, [][]string{{"/tmp/a,b.txt"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"/tmp/a,b.txt"`)

	rows := readCSV(t, path)
	assert.Equal(t, "/tmp/a,b.txt", rows[1][0])
}

func TestWriteCSVNoClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.csv")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	err := WriteCSV(path, []string{"h"}, nil)
	assert.ErrorIs(t, err, ErrWriteConflict)

	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(raw), "existing file must stay untouched")
}

func TestWriteCSVUnwritableDestination(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "no-such-dir", "out.csv"), []string{"h"}, nil)
	assert.ErrorIs(t, err, ErrDestinationUnwritable)
}

func TestDigestFileName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := DigestFileName("/out", "/data/Photos", digest.SHA256, now)
	assert.Equal(t, filepath.Join("/out", "Photos_20240309140507_sha256_digest.csv"), got)

	again := DigestFileName("/out", "/data/Photos/", digest.SHA256, now)
	assert.Equal(t, got, again, "trailing separator must not change the name")
}

func TestWriteDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")
	records := []digest.Record{
		{Algorithm: "md5", Hash: "ABCD", Path: "/data/a.txt"},
		{Algorithm: "md5", Hash: "EF01", Path: "/data/b.txt"},
	}
	require.NoError(t, WriteDigest(path, records))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"algorithm", "hash", "path"}, rows[0])
	assert.Equal(t, []string{"md5", "ABCD", "/data/a.txt"}, rows[1])
}

func TestWriteDigestEmptyStillHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteDigest(path, nil))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"algorithm", "hash", "path"}, rows[0])
}

func auditTally() *audit.Tally {
	tally := audit.NewTally()
	for _, name := range []string{"a.txt", "b..txt", "café.txt"} {
		tally.Add(walker.FileEntry{Path: "/scan/" + name, Name: name, Ext: ".txt"}, true)
	}
	return tally
}

func TestWriteAuditReports(t *testing.T) {
	saveDir := t.TempDir()
	errs := WriteAuditReports(saveDir, auditTally())
	require.Empty(t, errs)

	freq := readCSV(t, filepath.Join(saveDir, CharFrequencyFile))
	assert.Equal(t, []string{"character", "count"}, freq[0])
	assert.Greater(t, len(freq), 1)

	nonASCII := readCSV(t, filepath.Join(saveDir, NonASCIIFrequencyFile))
	require.Len(t, nonASCII, 2)
	assert.Equal(t, []string{"é", "1"}, nonASCII[1])

	files := readCSV(t, filepath.Join(saveDir, NonASCIIFilesFile))
	require.Len(t, files, 2)
	assert.Equal(t, "/scan/café.txt", files[1][0])

	dots := readCSV(t, filepath.Join(saveDir, ExtraDotFilesFile))
	require.Len(t, dots, 2)
	assert.Equal(t, "/scan/b..txt", dots[1][0])
}

func TestWriteAuditReportsBestEffort(t *testing.T) {
	saveDir := t.TempDir()
	// Pre-existing frequency report forces a conflict on one of the
	// four writes; the other three must still land.
	conflicting := filepath.Join(saveDir, CharFrequencyFile)
	require.NoError(t, os.WriteFile(conflicting, []byte("old"), 0644))

	errs := WriteAuditReports(saveDir, auditTally())
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrWriteConflict)
	assert.True(t, strings.HasPrefix(errs[0].Error(), CharFrequencyFile))

	raw, err := os.ReadFile(conflicting)
	require.NoError(t, err)
	assert.Equal(t, "old", string(raw))

	for _, name := range []string{NonASCIIFrequencyFile, NonASCIIFilesFile, ExtraDotFilesFile} {
		_, err := os.Stat(filepath.Join(saveDir, name))
		assert.NoError(t, err, "report %s should still be written", name)
	}
}

func TestWriteAuditReportsEmptyTally(t *testing.T) {
	saveDir := t.TempDir()
	errs := WriteAuditReports(saveDir, audit.NewTally())
	require.Empty(t, errs)

	for _, name := range []string{CharFrequencyFile, NonASCIIFrequencyFile, NonASCIIFilesFile, ExtraDotFilesFile} {
		rows := readCSV(t, filepath.Join(saveDir, name))
		assert.Len(t, rows, 1, "report %s should be headers-only", name)
	}
}
