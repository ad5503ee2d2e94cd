// file: internal/report/csv.go
// version: 1.1.0
// guid: 1a9b5c8d-6e0f-4b2c-5d3e-4f8a9b0c1d2e

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// ErrWriteConflict indicates the target file already exists. Reports
// never overwrite existing files.
var ErrWriteConflict = errors.New("output file already exists")

// ErrDestinationUnwritable indicates the target could not be created
// or written.
var ErrDestinationUnwritable = errors.New("destination unwritable")

// WriteCSV writes a UTF-8, comma-delimited CSV with a header row. The
// target must not exist; an existing file is left untouched and
// reported as a conflict.
func WriteCSV(path string, header []string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrWriteConflict, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDestinationUnwritable, path, err)
	}
	return nil
}
