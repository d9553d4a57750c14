package openklant

import (
	"context"
	"fmt"
	"iter"
)

// PaginatedResponse is the envelope every list endpoint returns.
type PaginatedResponse[T any] struct {
	Count    int     `json:"count"    yaml:"count"`
	Next     *string `json:"next"     yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Results  []T     `json:"results"  yaml:"results"`
}

// HasNext reports whether the server advertised a following page.
func (p *PaginatedResponse[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// NextURL returns the locator of the following page, or "".
func (p *PaginatedResponse[T]) NextURL() string {
	if !p.HasNext() {
		return ""
	}

	return *p.Next
}

// PageFetcher fetches one page. next is "" for the first page and otherwise
// the locator taken verbatim from the previous page.
type PageFetcher[T any] func(ctx context.Context, next string) (*PaginatedResponse[T], error)

// Iterate yields every record of every page in server order. A failed fetch is
// yielded once as an error and ends the sequence. Ranging again starts over
// from the first page.
func Iterate[T any](ctx context.Context, fetch PageFetcher[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		next := ""

		for {
			if err := ctx.Err(); err != nil {
				yield(zero, err)

				return
			}

			page, err := fetch(ctx, next)
			if err != nil {
				yield(zero, err)

				return
			}

			for _, record := range page.Results {
				if !yield(record, nil) {
					return
				}
			}

			if !page.HasNext() {
				return
			}

			next = page.NextURL()
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var records []T

	for record, err := range seq {
		if err != nil {
			return records, err
		}

		records = append(records, record)
	}

	return records, nil
}

// FetchAll fetches up to maxPages pages and returns their records. maxPages
// <= 0 means no limit. It guards against servers whose next locators cycle.
func FetchAll[T any](ctx context.Context, fetch PageFetcher[T], maxPages int) ([]T, error) {
	var records []T

	next := ""

	for pages := 0; maxPages <= 0 || pages < maxPages; pages++ {
		page, err := fetch(ctx, next)
		if err != nil {
			return records, fmt.Errorf("fetching page %d: %w", pages+1, err)
		}

		records = append(records, page.Results...)

		if !page.HasNext() {
			break
		}

		next = page.NextURL()
	}

	return records, nil
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Count int
	Err   error
}

// StreamPages fetches pages in a goroutine and delivers them on the returned
// channel, which is closed after the last page or the first error.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T]) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		next := ""

		for {
			page, err := fetch(ctx, next)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Results, Count: page.Count}:
			case <-ctx.Done():
				return
			}

			if !page.HasNext() {
				return
			}

			next = page.NextURL()
		}
	}()

	return results
}
