package basicdata

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sweepline/disk-triage/internal/utils"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	data, err := Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Analyze() = %v, want empty", data)
	}
}

func TestAnalyzeTextFile(t *testing.T) {
	content := "Name ,Age,Height\nMark,22,1.65\n"
	path := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	data, err := Analyze(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("Analyze() returned %d results, want 1", len(data))
	}

	fd := data[0]
	if fd.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", fd.Size, len(content))
	}
	if len(fd.SHA256) != 64 {
		t.Errorf("SHA256 = %q, want 64 hex characters", fd.SHA256)
	}
	if !strings.HasPrefix(fd.DetectedType, "text/") {
		t.Errorf("DetectedType = %q, want a text type", fd.DetectedType)
	}
	if fd.HeaderEntropy <= 0 {
		t.Errorf("HeaderEntropy = %f, want > 0 for varied content", fd.HeaderEntropy)
	}

	total := 0
	for _, pair := range fd.HeaderByteCounts.ToPairs() {
		total += pair.Count
	}
	if total != len(content) {
		t.Errorf("header byte counts total %d, want %d", total, len(content))
	}
}

func TestAnalyzeConstantFileHasZeroEntropy(t *testing.T) {
	tolerance := 1e-12
	path := filepath.Join(t.TempDir(), "constant.bin")
	if err := os.WriteFile(path, []byte(strings.Repeat("a", 200)), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	data, err := Analyze(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if !utils.FloatEquals(data[0].HeaderEntropy, 0, tolerance) {
		t.Errorf("HeaderEntropy = %f, want 0 for a single-byte-value file", data[0].HeaderEntropy)
	}
}

func TestAnalyzeMissingFileStillReturnsEntry(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")
	data, err := Analyze(context.Background(), []string{missing})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("Analyze() returned %d results, want 1", len(data))
	}
	if data[0].Size != -1 {
		t.Errorf("Size = %d, want -1 error value", data[0].Size)
	}
}
