// file: internal/report/digest.go
// version: 1.2.0
// guid: 2b0c6d9e-7f1a-4c3d-6e4f-5a9b0c1d2e3f

package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mholtz/treeaudit/internal/digest"
)

// DigestFileName derives the manifest file name from the source folder
// name, a second-granularity timestamp, and the lower-case algorithm
// name. The same inputs always produce the same name.
func DigestFileName(destDir, sourceDir string, algo digest.Algorithm, now time.Time) string {
	source := filepath.Base(filepath.Clean(sourceDir))
	name := fmt.Sprintf("%s_%s_%s_digest.csv", source, now.Format("20060102150405"), algo)
	return filepath.Join(destDir, name)
}

// WriteDigest writes the manifest CSV with one row per record, in the
// order given. No-clobber semantics apply to the derived path.
func WriteDigest(path string, records []digest.Record) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Algorithm, rec.Hash, rec.Path})
	}
	return WriteCSV(path, []string{"algorithm", "hash", "path"}, rows)
}
