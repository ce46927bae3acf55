package triage

import (
	"fmt"
	"strings"

	"github.com/sweepline/disk-triage/internal/triage/basicdata"
	"github.com/sweepline/disk-triage/internal/triage/signature"
)

// FileReport holds all evidence collected for a single candidate file.
// It is JSON serialisable so reports can be stored as plain data.
type FileReport struct {
	Path string `json:"path"`

	// Kind is the signature classification of the file's header.
	Kind signature.FileKind `json:"kind,omitempty"`

	Basic *basicdata.FileData `json:"basic,omitempty"`
}

func (r FileReport) String() string {
	parts := []string{fmt.Sprintf("== %s ==", r.Path)}
	if r.Kind != "" {
		parts = append(parts, fmt.Sprintf("kind: %s", r.Kind))
	}
	if r.Basic != nil {
		parts = append(parts, r.Basic.String())
	}
	return strings.Join(parts, "\n")
}

// TreeReport is the top-level result of a triage sweep over one root
// directory.
type TreeReport struct {
	Root string `json:"root"`

	// FileCount is the number of candidate files that matched the
	// scanner's filters.
	FileCount int `json:"file_count"`

	// SizeBenfordDeviation scores the candidate file sizes against the
	// Benford first-digit distribution. Values near 0 are typical of
	// organically grown trees.
	SizeBenfordDeviation float64 `json:"size_benford_deviation,omitempty"`

	Files []FileReport `json:"files"`
}

func (r TreeReport) String() string {
	fileStrings := make([]string, 0, len(r.Files))
	for _, file := range r.Files {
		fileStrings = append(fileStrings, file.String())
	}
	header := fmt.Sprintf("Triage of %s: %d files, size Benford deviation %.4f",
		r.Root, r.FileCount, r.SizeBenfordDeviation)
	return header + "\n\n" + strings.Join(fileStrings, "\n\n")
}
