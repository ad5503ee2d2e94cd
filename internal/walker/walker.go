// file: internal/walker/walker.go
// version: 1.1.0
// guid: 4f2a8b1c-9d3e-4a5b-8c6d-7e1f2a3b4c5d

package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathNotFound indicates the requested root directory does not exist.
var ErrPathNotFound = errors.New("path not found")

// FileEntry describes a single regular file discovered during a walk.
type FileEntry struct {
	Path string // absolute path
	Name string // base name including extension
	Ext  string // extension with leading dot, empty if none
}

// Walk returns every regular file reachable under root by recursive
// descent, hidden files included. Symlinks are not followed. The result
// is in lexical order, so a fixed tree snapshot always yields the same
// sequence.
func Walk(root string) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	var entries []FileEntry
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		entries = append(entries, FileEntry{
			Path: path,
			Name: name,
			Ext:  filepath.Ext(name),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", absRoot, err)
	}

	return entries, nil
}
