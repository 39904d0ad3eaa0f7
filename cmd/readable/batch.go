package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/batch"
	"github.com/fwojciec/readable/bloom"
	"github.com/fwojciec/readable/fs"
)

// Bloom filter sizing for in-batch deduplication.
const batchFalsePositiveRate = 0.001

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	opts, err := c.Options()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	if c.Out == "" && !c.Store {
		fmt.Fprintln(deps.Stderr, "error: nothing to do. Use --out DIR and/or --store")
		return readable.Errorf(readable.EINVALID, "nothing to do. Use --out DIR and/or --store")
	}

	inputs := make([]batch.Input, 0, len(c.Files))
	for _, path := range c.Files {
		u, err := c.inputURL(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}
		inputs = append(inputs, batch.Input{Path: path, URL: u})
	}

	runner := &batch.Runner{
		Extractor:   deps.NewExtractor(opts),
		Seen:        bloom.NewFilter(uint(max(len(inputs), 1)), batchFalsePositiveRate),
		Concurrency: c.Concurrency,
	}
	if c.Store {
		runner.Documents = deps.Documents
		runner.Hash = deps.Hash
	}

	var store *fs.FileStore
	if c.Out != "" {
		out := filepath.Clean(c.Out)
		store = fs.NewFileStore(filepath.Dir(out), filepath.Base(out), deps.Converter)
		if err := store.Prepare(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}
		runner.Writer = store
	}

	result, err := runner.Run(deps.Ctx, inputs, func(e batch.ProgressEvent) {
		printProgress(deps, e)
	})
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "\nSaved %d, skipped %d, failed %d (%s read)\n",
		result.Saved, result.Skipped, result.Failed, batch.FormatBytes(result.Bytes))
	return nil
}

// inputURL returns the page URL for a file: the URL prefix joined with the
// file path when a prefix is set, otherwise a file URL.
func (c *BatchCmd) inputURL(path string) (string, error) {
	if c.URLPrefix == "" {
		return sourceURL(path, "")
	}
	rel := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
	return strings.TrimSuffix(c.URLPrefix, "/") + "/" + rel, nil
}

const progressPathWidth = 40

func printProgress(deps *Dependencies, e batch.ProgressEvent) {
	path := batch.TruncatePath(e.Path, progressPathWidth)
	switch e.Type {
	case batch.ProgressSaved:
		fmt.Fprintf(deps.Stdout, "[%d/%d] saved   %-*s  %s (%d chars)\n", e.Completed, e.Total, progressPathWidth, path, e.Title, e.Length)
	case batch.ProgressSkipped:
		fmt.Fprintf(deps.Stdout, "[%d/%d] skipped %-*s  %s\n", e.Completed, e.Total, progressPathWidth, path, e.Reason)
	case batch.ProgressFailed:
		msg := readable.ErrorMessage(e.Error)
		switch readable.ErrorCode(e.Error) {
		case readable.ENOCONTENT:
			msg = "no article found"
		case readable.EINTERNAL:
			msg = e.Error.Error()
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] failed  %-*s  %s\n", e.Completed, e.Total, progressPathWidth, path, msg)
	}
}
