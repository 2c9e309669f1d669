// Package inventory lists every archive below a directory and summarises
// each one.
package inventory

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"archive-listing/internal/archiver"
	"archive-listing/internal/models"
	"archive-listing/internal/parser"
	"archive-listing/internal/progress"
	"archive-listing/internal/scanner"
)

// Result is the summary of one archive. Error is set instead of the counts
// when the archive could not be listed.
type Result struct {
	Archive      string `json:"archive"`
	Type         string `json:"type,omitempty"`
	PhysicalSize int64  `json:"physicalSize,omitempty"`
	Entries      int    `json:"entries"`
	Files        int    `json:"files"`
	Dirs         int    `json:"dirs"`
	Size         uint64 `json:"size"`
	Error        string `json:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Error != ""
}

// Options control ProcessArchives. A nil Logger discards log output and a
// nil Progress writer disables the bar.
type Options struct {
	Jobs     int
	Progress io.Writer
	Logger   *pterm.Logger
}

// ProcessArchives lists every archive under rootDir with up to opts.Jobs
// archives in flight. Results keep the scanner's order. A broken archive
// does not stop the run; it is reported in its Result.
func ProcessArchives(ctx context.Context, rootDir string, opts Options) ([]Result, error) {
	files, err := scanner.ScanDirectory(rootDir)
	if err != nil {
		return nil, fmt.Errorf("error scanning directory: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = pterm.DefaultLogger.WithWriter(io.Discard)
	}
	logger.Info("scanning archives", logger.Args("root", rootDir, "archives", len(files)))

	total := len(files)
	if opts.Progress == nil {
		total = 0
	}
	tracker, err := progress.New("Listing archives", total, opts.Progress)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = listArchive(file)
			tracker.Step(filepath.Base(file))
			return nil
		})
	}
	waitErr := g.Wait()
	if err := tracker.Stop(); err != nil {
		return nil, err
	}
	if waitErr != nil {
		return nil, waitErr
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
			logger.Warn("failed to list archive", logger.Args("archive", r.Archive, "error", r.Error))
		}
	}
	logger.Info("scan finished", logger.Args("archives", len(results), "failed", failed))
	return results, nil
}

func listArchive(file string) Result {
	r := Result{Archive: file}

	lines, err := archiver.List(file)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	listing, err := models.NewListing(parser.New(lines), parser.NoLimit)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	if info := listing.Info(); info != nil {
		r.Type = info.Type()
		r.PhysicalSize = info.PhysicalSize()
	}
	totals := listing.Totals()
	r.Entries = len(listing.Entries())
	r.Files = totals.Files
	r.Dirs = totals.Dirs
	r.Size = totals.Size
	return r
}
