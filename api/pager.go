package api

import (
	"context"

	"github.com/goldrush-dev/goldrush-go/types"
)

// fetchPageFn fetches one page. page is the page number to request;
// paged reports whether a page number should be sent at all (the
// first call lets the server pick its default page).
type fetchPageFn[T any] func(ctx context.Context, page uint32, paged bool) ([]T, *types.PageInfo, error)

// PageIterator walks a paginated endpoint one page at a time. It is
// lazy: no request happens until Next is called. It is not safe for
// concurrent use. Once a fetch fails the iterator stays finished; a
// partial walk is not resumable.
//
// Iteration finishes when a page comes back empty or without
// has_more=true. When the server reports its own page_number the
// iterator trusts it for the follow-up request; otherwise it counts
// pages locally starting from zero.
type PageIterator[T any] struct {
	fetch    fetchPageFn[T]
	page     uint32
	paged    bool
	finished bool
}

func newPageIterator[T any](fetch fetchPageFn[T]) *PageIterator[T] {
	return &PageIterator[T]{fetch: fetch}
}

// Next fetches the next page of items. It returns (nil, nil) once the
// iterator is exhausted. An error ends the iteration: the error is
// surfaced once and the iterator is finished; retrying means building
// a fresh iterator.
func (it *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if it.finished {
		return nil, nil
	}

	items, pageInfo, err := it.fetch(ctx, it.page, it.paged)
	if err != nil {
		it.finished = true
		return nil, err
	}

	if len(items) == 0 || !pageInfo.More() {
		it.finished = true
		return items, nil
	}

	if pageInfo != nil && pageInfo.PageNumber != nil {
		it.page = *pageInfo.PageNumber + 1
	} else if it.paged {
		it.page++
	} else {
		// First page was served without an explicit number; the
		// server default is page zero, so the follow-up is one.
		it.page = 1
	}
	it.paged = true

	return items, nil
}

// HasMore reports whether another call to Next may yield items.
func (it *PageIterator[T]) HasMore() bool {
	return !it.finished
}

// All drains the iterator and returns every remaining item. On error
// it returns the items collected so far alongside the error.
func (it *PageIterator[T]) All(ctx context.Context) ([]T, error) {
	var all []T
	for it.HasMore() {
		items, err := it.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}
