// Package fileheader reads the leading bytes of files under a fixed size
// cap, bounding per-file memory and I/O regardless of file size.
package fileheader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxSize is the number of bytes read from the start of a file.
const MaxSize = 64

// ErrIsDirectory is returned when the supplied path names a directory
// rather than a regular file.
var ErrIsDirectory = errors.New("path is a directory")

// Read opens the file at the given path and returns at most MaxSize bytes
// from its start. Fewer bytes are returned only when the file itself is
// shorter; an empty file yields an empty (non-nil) slice.
//
// Failures surface as distinct errors: a missing path or denied permission
// is reported through the *fs.PathError from opening the file, and a
// directory path wraps ErrIsDirectory. No partial buffer is ever returned
// alongside an error. The file handle is closed before returning.
func Read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read header of %s: %w", path, ErrIsDirectory)
	}

	header := make([]byte, MaxSize)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return header[:n], nil
}
