package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrush-dev/goldrush-go/types"
)

func boolPtr(b bool) *bool    { return &b }
func u32Ptr(v uint32) *uint32 { return &v }

type fakePage struct {
	items      []string
	hasMore    *bool
	pageNumber *uint32
	err        error
}

func fakeFetch(pages []fakePage, calls *[]uint32, pagedFlags *[]bool) fetchPageFn[string] {
	return func(_ context.Context, page uint32, paged bool) ([]string, *types.PageInfo, error) {
		p := pages[len(*calls)]
		*calls = append(*calls, page)
		*pagedFlags = append(*pagedFlags, paged)
		if p.err != nil {
			return nil, nil, p.err
		}
		info := &types.PageInfo{HasMore: p.hasMore, PageNumber: p.pageNumber}
		return p.items, info, nil
	}
}

func Test_PageIterator_walks_until_has_more_false(t *testing.T) {
	var calls []uint32
	var pagedFlags []bool
	it := newPageIterator(fakeFetch([]fakePage{
		{items: []string{"a", "b"}, hasMore: boolPtr(true), pageNumber: u32Ptr(0)},
		{items: []string{"c"}, hasMore: boolPtr(true), pageNumber: u32Ptr(1)},
		{items: []string{"d"}, hasMore: boolPtr(false), pageNumber: u32Ptr(2)},
	}, &calls, &pagedFlags))

	ctx := context.Background()

	batch1, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, batch1)
	assert.True(t, it.HasMore())

	batch2, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, batch2)

	batch3, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, batch3)
	assert.False(t, it.HasMore())

	end, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, end)

	// First call is unpaged; follow-ups request server page + 1.
	assert.Equal(t, []bool{false, true, true}, pagedFlags)
	assert.Equal(t, []uint32{0, 1, 2}, calls)
}

func Test_PageIterator_empty_first_page(t *testing.T) {
	var calls []uint32
	var pagedFlags []bool
	it := newPageIterator(fakeFetch([]fakePage{
		{items: nil, hasMore: boolPtr(true)},
	}, &calls, &pagedFlags))

	items, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, it.HasMore())
	assert.Equal(t, 1, len(calls))
}

func Test_PageIterator_absent_has_more_ends(t *testing.T) {
	var calls []uint32
	var pagedFlags []bool
	it := newPageIterator(fakeFetch([]fakePage{
		{items: []string{"a"}},
	}, &calls, &pagedFlags))

	items, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)
	assert.False(t, it.HasMore())
}

func Test_PageIterator_local_counter_fallback(t *testing.T) {
	var calls []uint32
	var pagedFlags []bool
	it := newPageIterator(fakeFetch([]fakePage{
		{items: []string{"a"}, hasMore: boolPtr(true)},
		{items: []string{"b"}, hasMore: boolPtr(true)},
		{items: []string{"c"}, hasMore: boolPtr(false)},
	}, &calls, &pagedFlags))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := it.Next(ctx)
		require.NoError(t, err)
	}

	// No server page_number: first page is the server default (zero),
	// so the follow-ups count up locally from one.
	assert.Equal(t, []bool{false, true, true}, pagedFlags)
	assert.Equal(t, []uint32{0, 1, 2}, calls)
}

func Test_PageIterator_error_finishes_iteration(t *testing.T) {
	var calls []uint32
	var pagedFlags []bool
	it := newPageIterator(fakeFetch([]fakePage{
		{items: []string{"a"}, hasMore: boolPtr(true), pageNumber: u32Ptr(0)},
		{err: fmt.Errorf("transient")},
		{items: []string{"b"}, hasMore: boolPtr(false)},
	}, &calls, &pagedFlags))

	ctx := context.Background()

	items, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)

	_, err = it.Next(ctx)
	require.Error(t, err)
	assert.False(t, it.HasMore())

	// The iterator is frozen: no further fetch happens even though the
	// next scripted page would succeed.
	end, err := it.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, end)
	assert.Equal(t, []uint32{0, 1}, calls)
}

func Test_PageIterator_All(t *testing.T) {
	var calls []uint32
	var pagedFlags []bool
	it := newPageIterator(fakeFetch([]fakePage{
		{items: []string{"a", "b"}, hasMore: boolPtr(true), pageNumber: u32Ptr(0)},
		{items: []string{"c"}, hasMore: boolPtr(false), pageNumber: u32Ptr(1)},
	}, &calls, &pagedFlags))

	all, err := it.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, all)
	assert.False(t, it.HasMore())
}
