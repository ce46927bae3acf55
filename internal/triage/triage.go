// Package triage drives a forensic sweep: the scanner produces candidate
// files, the header reader and signature classifier tag each one, and the
// frequency analyzer scores the tree for statistical anomalies.
package triage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sweepline/disk-triage/internal/featureflags"
	"github.com/sweepline/disk-triage/internal/triage/basicdata"
	"github.com/sweepline/disk-triage/internal/triage/fileheader"
	"github.com/sweepline/disk-triage/internal/triage/frequency"
	"github.com/sweepline/disk-triage/internal/triage/scanner"
	"github.com/sweepline/disk-triage/internal/triage/signature"
)

// Options selects which files are scanned and which evidence is collected.
type Options struct {
	// Extensions filters candidate files by extension (without the dot).
	// An empty-string entry matches extensionless files.
	Extensions []string

	// IncludeTextFiles also admits files whose header looks like
	// printable text, regardless of extension.
	IncludeTextFiles bool

	// Tasks lists the evidence to collect per file. Use AllTasks() for
	// everything; passing All directly is an error.
	Tasks []Task
}

/*
AnalyzeTree sweeps the directory tree under root and produces a TreeReport
describing every candidate file selected by the options.

Each file is processed independently: a header that cannot be read skips
that file's classification but never aborts the sweep. A missing or
non-directory root fails the whole call with no partial report.
*/
func AnalyzeTree(ctx context.Context, root string, opts Options) (*TreeReport, error) {
	runTask := map[Task]bool{}
	for _, task := range opts.Tasks {
		switch task {
		case Basic, Signature:
			runTask[task] = true
		case All:
			return nil, errors.New("triage.All should not be passed in directly, use triage.AllTasks() instead")
		default:
			return nil, fmt.Errorf("triage task not implemented: %s", task)
		}
	}

	paths, err := scanner.Scan(root, opts.Extensions, opts.IncludeTextFiles)
	if err != nil {
		return nil, fmt.Errorf("error scanning candidate files: %w", err)
	}

	report := &TreeReport{
		Root:      root,
		FileCount: len(paths),
		Files:     make([]FileReport, 0, len(paths)),
	}
	for _, path := range paths {
		report.Files = append(report.Files, FileReport{Path: path})
	}

	if runTask[Signature] {
		slog.InfoContext(ctx, "run signature classification", "files", len(paths))
		for i := range report.Files {
			header, err := fileheader.Read(report.Files[i].Path)
			if err != nil {
				slog.WarnContext(ctx, "skipped signature classification",
					"path", report.Files[i].Path, "error", err)
				continue
			}
			report.Files[i].Kind = signature.Classify(header)
		}
	}

	if runTask[Basic] {
		slog.InfoContext(ctx, "run basic data collection", "files", len(paths))
		basicData, err := basicdata.Analyze(ctx, paths)
		if err != nil {
			slog.ErrorContext(ctx, "basic data collection error", "error", err)
		} else if len(basicData) != len(report.Files) {
			slog.ErrorContext(ctx, fmt.Sprintf("basicdata.Analyze() returned %d results, expecting %d",
				len(basicData), len(report.Files)))
		} else {
			for i := range report.Files {
				report.Files[i].Basic = &basicData[i]
			}
		}
	}

	if featureflags.SizeBenfordCheck.Enabled() {
		report.SizeBenfordDeviation = sizeBenfordDeviation(report.Files)
	}

	return report, nil
}

// sizeBenfordDeviation scores the candidate file sizes against the Benford
// first-digit distribution. Sizes come from collected basic data where
// available; files without a known size are skipped.
func sizeBenfordDeviation(files []FileReport) float64 {
	sizes := make([]int64, 0, len(files))
	for _, file := range files {
		if file.Basic != nil && file.Basic.Size >= 0 {
			sizes = append(sizes, file.Basic.Size)
		}
	}
	return frequency.FirstDigitDeviation(sizes)
}
