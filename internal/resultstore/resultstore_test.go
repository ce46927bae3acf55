package resultstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sweepline/disk-triage/internal/triage"
)

func TestMakeFilename(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		label    string
		expected string
	}{
		{"plain root", "/home/user/evidence", "", "evidence.json"},
		{"with label", "/home/user/evidence", "sweep1", "sweep1-evidence.json"},
		{"trailing slash stripped by base", "/data/", "", "data.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeFilename(tt.root, tt.label); got != tt.expected {
				t.Errorf("MakeFilename(%q, %q) = %q, want %q", tt.root, tt.label, got, tt.expected)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	bucketDir := t.TempDir()
	rs := New("file://" + bucketDir)

	report := &triage.TreeReport{
		Root:      "/scans/usb0",
		FileCount: 2,
		Files: []triage.FileReport{
			{Path: "/scans/usb0/a.db", Kind: "sqlite_database"},
			{Path: "/scans/usb0/b.txt", Kind: "unknown"},
		},
	}
	if err := rs.Save(context.Background(), report); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(bucketDir, "usb0.json"))
	if err != nil {
		t.Fatalf("failed to read stored report: %v", err)
	}

	var stored result
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("stored report is not valid JSON: %v", err)
	}
	if stored.CreatedTimestamp == 0 {
		t.Error("stored report missing creation timestamp")
	}
	if stored.Report == nil || stored.Report.FileCount != 2 {
		t.Errorf("stored report = %+v, want the saved report", stored.Report)
	}
}

func TestSaveWithEmptyFilename(t *testing.T) {
	rs := New("file://" + t.TempDir())
	if err := rs.SaveWithFilename(context.Background(), &triage.TreeReport{}, ""); err == nil {
		t.Error("SaveWithFilename(\"\") expected error, got nil")
	}
}
