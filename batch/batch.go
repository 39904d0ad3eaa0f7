// Package batch extracts articles from many HTML files concurrently and
// hands the results to storage.
package batch

import (
	"context"
	"os"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker count used when Runner.Concurrency is
// not positive.
const DefaultConcurrency = 4

// Input is one HTML file to extract.
type Input struct {
	// Path is the file to read.
	Path string

	// URL is the page URL used as base for links and as document source.
	URL string
}

// Runner extracts a set of inputs with a bounded worker pool. Results are
// stored in input order, so the first of several identical articles wins.
type Runner struct {
	Extractor readable.Extractor

	// Documents stores each article when set. Articles whose content hash
	// is already stored are skipped.
	Documents readable.DocumentService

	// Writer receives each article when set.
	Writer readable.DocumentWriter

	// Seen skips articles whose text already appeared in this batch.
	Seen *bloom.Filter

	// Hash computes the content hash used for the stored-duplicate lookup.
	Hash func(content string) string

	// ReadFile reads an input. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	Concurrency int
}

// Result holds the outcome of a batch.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress of a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	URL       string
	Title     string
	Length    int
	Reason    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Skip reasons reported in ProgressEvent.Reason.
const (
	ReasonDuplicate = "duplicate in batch"
	ReasonStored    = "already stored"
)

// extraction holds the outcome of processing a single input.
type extraction struct {
	position int
	input    Input
	bytes    int
	article  *readable.Article
	err      error
}

// Run extracts every input and saves the results. Per-input failures are
// counted and reported through progress; Run only fails when ctx is
// canceled.
func (r *Runner) Run(ctx context.Context, inputs []Input, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	total := len(inputs)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	results := make([]extraction, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			results[i] = r.extract(gctx, i, in)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var res Result
	for i, ex := range results {
		event := ProgressEvent{
			Completed: i + 1,
			Total:     total,
			Path:      ex.input.Path,
			URL:       ex.input.URL,
		}

		if ex.err != nil {
			res.Failed++
			event.Type = ProgressFailed
			event.Error = ex.err
			progress(event)
			continue
		}

		event.Title = ex.article.Title
		event.Length = ex.article.Length

		reason, err := r.save(ctx, ex)
		switch {
		case err != nil:
			res.Failed++
			event.Type = ProgressFailed
			event.Error = err
		case reason != "":
			res.Skipped++
			event.Type = ProgressSkipped
			event.Reason = reason
		default:
			res.Saved++
			res.Bytes += ex.bytes
			event.Type = ProgressSaved
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return &res, nil
}

// extract reads and extracts a single input.
func (r *Runner) extract(ctx context.Context, position int, in Input) extraction {
	ex := extraction{position: position, input: in}
	if err := ctx.Err(); err != nil {
		ex.err = err
		return ex
	}

	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(in.Path)
	if err != nil {
		ex.err = err
		return ex
	}
	ex.bytes = len(data)

	ex.article, ex.err = r.Extractor.Extract(string(data), in.URL)
	return ex
}

// save deduplicates and stores one article. It returns a non-empty skip
// reason when the article was not stored.
func (r *Runner) save(ctx context.Context, ex extraction) (string, error) {
	if r.Seen != nil && r.Seen.Seen(ex.article.TextContent) {
		return ReasonDuplicate, nil
	}

	doc := readable.NewDocument(ex.input.URL, ex.article)

	if r.Documents != nil {
		if r.Hash != nil {
			hash := r.Hash(doc.Content)
			stored, err := r.Documents.FindDocuments(ctx, readable.DocumentFilter{ContentHash: &hash, Limit: 1})
			if err != nil {
				return "", err
			}
			if len(stored) > 0 {
				return ReasonStored, nil
			}
		}
		if err := r.Documents.CreateDocument(ctx, doc); err != nil {
			return "", err
		}
	}

	if r.Writer != nil {
		if err := r.Writer.CreateDocument(ctx, doc); err != nil {
			return "", err
		}
	}

	return "", nil
}
