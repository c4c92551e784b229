// Package ingest parses card list documents from disk into flat card
// records. Documents are parsed in parallel but their cards are accumulated
// in input order, so later documents override earlier ones on ID collisions.
package ingest

import (
	"context"
	"os"

	"github.com/fwojciec/cardlist"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents parsed at once when
// Parser.Concurrency is not set.
const DefaultConcurrency = 4

// Parser parses HTML documents with a CardExtractor.
type Parser struct {
	Extractor   cardlist.CardExtractor
	Concurrency int
}

// Result holds the outcome of a parse run.
type Result struct {
	// Cards from every successfully parsed document, in input order.
	Cards  []*cardlist.Card
	Parsed int
	Failed int
}

// ProgressEvent reports progress during a parse run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Cards     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting parse progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of parsing a single document.
type fileResult struct {
	position int
	path     string
	cards    []*cardlist.Card
	err      error
}

// ParseFiles parses every path and returns the accumulated cards. A document
// that cannot be read or parsed is reported as failed and skipped. The
// progress callback, if provided, is always called from the calling goroutine.
func (p *Parser) ParseFiles(ctx context.Context, paths []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan fileResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- fileResult{position: i, path: path, err: err}
					return nil
				}
				resultCh <- p.parseFile(i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]fileResult, total)
	var completed int
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Path:      result.path,
			Cards:     len(result.cards),
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out Result
	for _, result := range results {
		if result.err != nil {
			out.Failed++
			continue
		}
		out.Parsed++
		out.Cards = append(out.Cards, result.cards...)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total, Cards: len(out.Cards)})
	}

	return &out, nil
}

func (p *Parser) parseFile(position int, path string) fileResult {
	result := fileResult{position: position, path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.err = err
		return result
	}

	cards, err := p.Extractor.Extract(string(data))
	if err != nil {
		result.err = err
		return result
	}
	result.cards = cards
	return result
}
