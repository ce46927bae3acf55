// Package scanner enumerates candidate files for triage by walking a
// directory tree and filtering on extension or printable-text content.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/sweepline/disk-triage/internal/triage/fileheader"
	"github.com/sweepline/disk-triage/internal/utils"
)

// ErrNotDirectory is returned when the supplied root path exists but does
// not name a directory.
var ErrNotDirectory = errors.New("root path is not a directory")

/*
Scan recursively enumerates every regular file under root and returns the
paths matching the supplied filters. A file matches if its extension
(without the leading dot) is in extensions — an empty-string entry matches
extensionless files — or, when includeTextFiles is set, if its header looks
like printable text. The returned paths are unique; their order is not part
of the contract.

A missing or non-directory root fails the whole call with no partial
results. Failures on individual entries during the walk (permission denied,
broken entries) skip the offending file or subtree and continue.
*/
func Scan(root string, extensions []string, includeTextFiles bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: %w", root, ErrNotDirectory)
	}

	var matches []string
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if slices.Contains(extensions, ext) {
			matches = append(matches, path)
			return nil
		}
		if includeTextFiles && looksLikeText(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return utils.RemoveDuplicates(matches), nil
}

// looksLikeText reports whether a file's header reads cleanly and contains
// only printable characters. Empty files, unreadable files, and headers
// holding any control byte (value below 32, or 127) are rejected.
func looksLikeText(path string) bool {
	header, err := fileheader.Read(path)
	if err != nil || len(header) == 0 {
		return false
	}
	for _, b := range header {
		if b < 32 || b == 127 {
			return false
		}
	}
	return true
}
