// Package basicdata collects per-file information that does not depend on
// the file's format: size, digest, detected MIME type and header entropy.
package basicdata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/sweepline/disk-triage/internal/featureflags"
	"github.com/sweepline/disk-triage/internal/triage/fileheader"
	"github.com/sweepline/disk-triage/internal/triage/frequency"
	"github.com/sweepline/disk-triage/internal/utils"
	"github.com/sweepline/disk-triage/internal/utils/valuecounts"
)

// FileData records information about a file gathered without parsing its
// contents beyond the bounded header read.
type FileData struct {
	// DetectedType is the MIME type detected from the file's content.
	DetectedType string `json:"detected_type"`

	// Size is the file size reported by the filesystem, or -1 on error.
	Size int64 `json:"size"`

	// SHA256 is the hex-encoded SHA-256 digest of the file.
	SHA256 string `json:"sha256"`

	// HeaderByteCounts is the distribution of byte values in the header.
	HeaderByteCounts valuecounts.ValueCounts `json:"header_byte_counts,omitempty"`

	// HeaderEntropy is the Shannon entropy of that distribution, in bits.
	// High values in a file claiming to be text suggest packed or
	// encrypted content.
	HeaderEntropy float64 `json:"header_entropy"`
}

func (d FileData) String() string {
	parts := []string{
		fmt.Sprintf("detected type: %v", d.DetectedType),
		fmt.Sprintf("size: %v", d.Size),
		fmt.Sprintf("sha256: %v", d.SHA256),
		fmt.Sprintf("header entropy: %v", d.HeaderEntropy),
	}
	return strings.Join(parts, "\n")
}

// Analyze collects basic file data for each of the given paths, returning
// one FileData per path in the same order. Per-file failures are logged
// rather than returned, so that one broken file does not discard the data
// collected for the others.
func Analyze(ctx context.Context, paths []string) ([]FileData, error) {
	if len(paths) == 0 {
		return []FileData{}, nil
	}

	result := make([]FileData, 0, len(paths))
	for _, path := range paths {
		data := FileData{}

		if info, err := os.Stat(path); err != nil {
			data.Size = -1
			slog.ErrorContext(ctx, "Error during stat file", "path", path, "error", err)
		} else {
			data.Size = info.Size()
		}

		if hash, err := utils.SHA256Hash(path); err != nil {
			slog.ErrorContext(ctx, "Error hashing file", "path", path, "error", err)
		} else {
			data.SHA256 = hash
		}

		if featureflags.MimeDetection.Enabled() {
			if mtype, err := mimetype.DetectFile(path); err != nil {
				slog.ErrorContext(ctx, "Error detecting file type", "path", path, "error", err)
			} else {
				data.DetectedType = mtype.String()
			}
		}

		if featureflags.HeaderEntropy.Enabled() {
			if header, err := fileheader.Read(path); err != nil {
				slog.ErrorContext(ctx, "Error reading file header", "path", path, "error", err)
			} else {
				counts := headerByteCounts(header)
				data.HeaderByteCounts = valuecounts.Count(counts)
				data.HeaderEntropy = frequency.EntropyFromCounts(histogram(counts))
			}
		}

		result = append(result, data)
	}
	return result, nil
}

// headerByteCounts widens header bytes to ints for counting.
func headerByteCounts(header []byte) []int {
	values := make([]int, len(header))
	for i, b := range header {
		values[i] = int(b)
	}
	return values
}

// histogram tallies byte values into a fixed 256-bin count slice.
func histogram(values []int) []int {
	counts := make([]int, 256)
	for _, v := range values {
		counts[v]++
	}
	return counts
}
