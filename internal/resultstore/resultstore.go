// Package resultstore writes triage reports to a blob bucket as plain JSON.
// Only the local fileblob driver is registered; scanning stays on the local
// machine and so do its results.
package resultstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"

	"github.com/sweepline/disk-triage/internal/triage"
)

type ResultStore struct {
	bucket   string
	basePath string
}

type (
	Option interface{ set(*ResultStore) }
	option func(*ResultStore) // option implements Option.
)

func (o option) set(rs *ResultStore) { o(rs) }

// BasePath sets the base path used while saving reports to storage.
func BasePath(base string) Option {
	return option(func(rs *ResultStore) { rs.basePath = base })
}

// New creates a ResultStore writing to the bucket at the given URL,
// e.g. "file:///var/lib/disk-triage/reports".
func New(bucket string, options ...Option) *ResultStore {
	rs := &ResultStore{bucket: bucket}
	for _, o := range options {
		o.set(rs)
	}
	return rs
}

func (rs *ResultStore) String() string {
	return rs.bucket + "/" + rs.basePath
}

// result is the stored envelope around a triage report.
type result struct {
	CreatedTimestamp int64              `json:"created_timestamp"`
	Report           *triage.TreeReport `json:"report"`
}

// MakeFilename returns the default filename for a report on the given root,
// using an optional label: "<label>-<basename(root)>.json" if label is
// nonempty, "<basename(root)>.json" otherwise.
func MakeFilename(root, label string) string {
	prefix := filepath.Base(root)
	if label != "" {
		prefix = label + "-" + prefix
	}
	return prefix + ".json"
}

// SaveWithFilename writes the report to the bucket under the given filename.
func (rs *ResultStore) SaveWithFilename(ctx context.Context, report *triage.TreeReport, filename string) error {
	if filename == "" {
		return errors.New("filename cannot be empty")
	}

	b, err := json.Marshal(&result{
		CreatedTimestamp: time.Now().UTC().Unix(),
		Report:           report,
	})
	if err != nil {
		return err
	}

	bkt, err := blob.OpenBucket(ctx, rs.bucket)
	if err != nil {
		return err
	}
	defer bkt.Close()

	uploadPath := filepath.Join(rs.basePath, filename)
	slog.InfoContext(ctx, "Uploading triage report",
		"bucket", rs.bucket,
		"path", uploadPath)

	w, err := bkt.NewWriter(ctx, uploadPath, nil)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	return w.Close()
}

// Save writes the report with the default filename for its root.
func (rs *ResultStore) Save(ctx context.Context, report *triage.TreeReport) error {
	return rs.SaveWithFilename(ctx, report, MakeFilename(report.Root, ""))
}
