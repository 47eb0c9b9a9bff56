package swapi

import (
	"context"
	"fmt"
)

// PageSize is the number of results the catalog returns per collection page.
const PageSize = 10

// PaginationOptions configures multi-page fetches.
type PaginationOptions struct {
	// MaxPages stops the walk after this many pages. Zero means no limit.
	MaxPages int
}

// DefaultPaginationOptions returns options that walk every page.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// TotalPages returns the number of pages needed to show count results.
func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}

	return (count + perPage - 1) / perPage
}

// PaginationIterator walks a collection item by item, fetching pages lazily.
type PaginationIterator[T any] struct {
	ctx      context.Context
	searcher Searcher[T]
	search   string
	page     int
	items    []T
	index    int
	more     bool
	err      error
}

// NewPaginationIterator creates an iterator starting at params' page.
func NewPaginationIterator[T any](ctx context.Context, searcher Searcher[T], params *QueryParams) *PaginationIterator[T] {
	iterator := &PaginationIterator[T]{
		ctx:      ctx,
		searcher: searcher,
		page:     params.EffectivePage(),
		more:     true,
	}

	if params != nil {
		iterator.search = params.Search
	}

	return iterator
}

// HasNext reports whether another item is available. It fetches the next
// page when the current one is exhausted.
func (p *PaginationIterator[T]) HasNext() bool {
	for p.index >= len(p.items) && p.more && p.err == nil {
		if p.fetch() != nil {
			return false
		}
	}

	return p.err == nil && p.index < len(p.items)
}

// Next returns the next item.
func (p *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !p.HasNext() {
		if p.err != nil {
			return zero, p.err
		}

		return zero, ErrNoMoreItems
	}

	item := p.items[p.index]
	p.index++

	return item, nil
}

// Err returns the error that stopped the iterator, if any.
func (p *PaginationIterator[T]) Err() error {
	return p.err
}

// All drains the iterator.
func (p *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return all, err
		}

		all = append(all, item)
	}

	return all, p.err
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (p *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return p.err
}

func (p *PaginationIterator[T]) fetch() error {
	if p.searcher == nil {
		p.err = ErrNilSearcher

		return p.err
	}

	params := NewQueryParams().WithSearch(p.search).WithPage(p.page)

	collection, err := p.searcher.Search(p.ctx, params)
	if err != nil {
		p.err = fmt.Errorf("fetching page %d: %w", p.page, err)

		return p.err
	}

	p.items = collection.Results
	p.index = 0

	next, ok := collection.NextPage()
	if !ok || next <= p.page {
		p.more = false
	} else {
		p.page = next
	}

	if len(p.items) == 0 {
		p.more = false
	}

	return nil
}

// FetchAllPages follows next links from params' page until the collection
// ends or options.MaxPages pages have been read.
func FetchAllPages[T any](ctx context.Context, searcher Searcher[T], params *QueryParams, options *PaginationOptions) ([]T, error) {
	if searcher == nil {
		return nil, ErrNilSearcher
	}

	if options == nil {
		options = DefaultPaginationOptions()
	}

	var all []T

	query := NewQueryParams().WithPage(params.EffectivePage())
	if params != nil {
		query.WithSearch(params.Search)
	}

	for pages := 0; options.MaxPages == 0 || pages < options.MaxPages; pages++ {
		collection, err := searcher.Search(ctx, query)
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", query.EffectivePage(), err)
		}

		all = append(all, collection.Results...)

		next, ok := collection.NextPage()
		if !ok || next <= query.EffectivePage() {
			break
		}

		query.WithPage(next)
	}

	return all, nil
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Page  int
	Items []T
	Err   error
}

// StreamPages delivers pages on the returned channel as they are fetched.
// The channel is closed after the last page, the first error, or when ctx
// is done.
func StreamPages[T any](ctx context.Context, searcher Searcher[T], params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	if options == nil {
		options = DefaultPaginationOptions()
	}

	go func() {
		defer close(results)

		if searcher == nil {
			sendPage(ctx, results, PageResult[T]{Err: ErrNilSearcher})

			return
		}

		query := NewQueryParams().WithPage(params.EffectivePage())
		if params != nil {
			query.WithSearch(params.Search)
		}

		for pages := 0; options.MaxPages == 0 || pages < options.MaxPages; pages++ {
			page := query.EffectivePage()

			collection, err := searcher.Search(ctx, query)
			if err != nil {
				sendPage(ctx, results, PageResult[T]{Page: page, Err: fmt.Errorf("fetching page %d: %w", page, err)})

				return
			}

			if !sendPage(ctx, results, PageResult[T]{Page: page, Items: collection.Results}) {
				return
			}

			next, ok := collection.NextPage()
			if !ok || next <= page {
				return
			}

			query.WithPage(next)
		}
	}()

	return results
}

func sendPage[T any](ctx context.Context, results chan<- PageResult[T], result PageResult[T]) bool {
	select {
	case results <- result:
		return true
	case <-ctx.Done():
		return false
	}
}
