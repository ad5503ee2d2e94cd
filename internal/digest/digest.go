// file: internal/digest/digest.go
// version: 1.3.0
// guid: 7c5d1e4f-2a6b-4d8e-1f9a-0b4c5d6e7f8a

package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mholtz/treeaudit/internal/walker"
	"github.com/schollz/progressbar/v3"
)

// ErrUnreadableFile indicates a file could not be opened or read
// during hashing.
var ErrUnreadableFile = errors.New("unreadable file")

// Record is one row of the digest manifest.
type Record struct {
	Algorithm string
	Hash      string
	Path      string
}

// Skipped describes a file that could not be hashed.
type Skipped struct {
	Path   string
	Reason error
}

// File computes the digest of the file's full content and renders it
// as an uppercase hexadecimal string.
func File(algo Algorithm, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}
	defer f.Close()

	h := algo.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}

	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}

// Manifest hashes every entry and returns one record per readable file
// in discovery order. Unreadable files are skipped and returned
// separately so the caller can report them.
func Manifest(entries []walker.FileEntry, algo Algorithm, workers int) ([]Record, []Skipped) {
	return ManifestWithProgress(entries, algo, workers, false)
}

// ManifestWithProgress is Manifest with an optional progress bar for
// interactive runs. Records land in a slice indexed by discovery
// position, so output is identical regardless of worker scheduling.
func ManifestWithProgress(entries []walker.FileEntry, algo Algorithm, workers int, showProgress bool) ([]Record, []Skipped) {
	if workers < 1 {
		workers = 1
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(entries)))
	}

	results := make([]*Record, len(entries))
	failures := make([]*Skipped, len(entries))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := range entries {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{} // Acquire
			defer func() {
				<-semaphore // Release
				if bar != nil {
					bar.Add(1)
				}
			}()

			hash, err := File(algo, entries[idx].Path)
			if err != nil {
				failures[idx] = &Skipped{Path: entries[idx].Path, Reason: err}
				return
			}
			results[idx] = &Record{
				Algorithm: algo.String(),
				Hash:      hash,
				Path:      entries[idx].Path,
			}
		}(i)
	}

	wg.Wait()

	var records []Record
	var skipped []Skipped
	for i := range entries {
		if results[i] != nil {
			records = append(records, *results[i])
		}
		if failures[i] != nil {
			skipped = append(skipped, *failures[i])
		}
	}
	return records, skipped
}
