package cmudict

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kincaid/internal/domain"
)

const evalChunkSize = 512

// Counter estimates the syllables of a piece of text.
type Counter interface {
	SyllablesInText(text string) int
}

// Mismatch is a word whose estimate is not among its dictionary counts.
type Mismatch struct {
	Word      string
	Expected  []int
	Predicted int
}

// Result summarizes an evaluation run.
type Result struct {
	Words      int
	Mistakes   int
	Mismatches []Mismatch // sorted by word
}

// Accuracy returns the share of words estimated correctly.
func (r Result) Accuracy() float64 {
	if r.Words == 0 {
		return 0
	}
	return float64(r.Words-r.Mistakes) / float64(r.Words)
}

// WithinBaseline reports whether the run made at most baseline mistakes.
func (r Result) WithinBaseline(baseline int) bool {
	return r.Mistakes <= baseline
}

// CheckBaseline returns an error wrapping domain.ErrBaselineExceeded when the
// run made more than baseline mistakes.
func (r Result) CheckBaseline(baseline int) error {
	if r.WithinBaseline(baseline) {
		return nil
	}
	return fmt.Errorf("%d mistakes, baseline %d: %w", r.Mistakes, baseline, domain.ErrBaselineExceeded)
}

// Evaluate runs counter over every dictionary word using up to workers
// goroutines. It stops early when ctx is canceled.
func Evaluate(ctx context.Context, dict *Dictionary, counter Counter, workers int) (Result, error) {
	if workers < 1 {
		workers = 1
	}

	words := dict.Words()
	chunks := slices.Collect(slices.Chunk(words, evalChunkSize))
	found := make([][]Mismatch, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, word := range chunk {
				expected := dict.counts[word]
				predicted := counter.SyllablesInText(word)
				if !slices.Contains(expected, predicted) {
					found[i] = append(found[i], Mismatch{
						Word:      word,
						Expected:  slices.Clone(expected),
						Predicted: predicted,
					})
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("evaluate: %w", err)
	}

	res := Result{Words: len(words)}
	for _, m := range found {
		res.Mismatches = append(res.Mismatches, m...)
	}
	res.Mistakes = len(res.Mismatches)
	return res, nil
}
