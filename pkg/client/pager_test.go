package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves pages out of a fixed slice, recording each fetch.
type fakeCatalog struct {
	titles  []string
	fetches []int // page numbers seen
	failOn  int   // page number that errors, 0 for never
}

func (f *fakeCatalog) fetch(_ context.Context, search string, page, limit int) ([]string, error) {
	f.fetches = append(f.fetches, page)
	if page == f.failOn {
		return nil, errors.New("backend unavailable")
	}

	filtered := f.titles
	if search != "" {
		filtered = nil
		for _, t := range f.titles {
			if len(t) >= len(search) && t[:len(search)] == search {
				filtered = append(filtered, t)
			}
		}
	}

	offset := (page - 1) * limit
	if offset >= len(filtered) {
		return []string{}, nil
	}
	end := min(offset+limit, len(filtered))
	return filtered[offset:end], nil
}

func makeTitles(n int) []string {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = fmt.Sprintf("title-%02d", i)
	}
	return titles
}

func TestPager_LoadAccumulates(t *testing.T) {
	catalog := &fakeCatalog{titles: makeTitles(14)}
	p := NewPager(catalog.fetch, 10)

	assert.Equal(t, StateIdle, p.State())
	assert.Equal(t, 1, p.Page())
	assert.True(t, p.HasMore())
	assert.Empty(t, p.Items())

	require.NoError(t, p.Load(context.Background()))
	assert.Equal(t, StateLoaded, p.State())
	assert.Len(t, p.Items(), 10)
	assert.True(t, p.HasMore(), "full page means more may exist")

	require.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, p.Items(), 14)
	assert.Equal(t, 2, p.Page())
	assert.False(t, p.HasMore(), "short page is end-of-list")
	assert.Equal(t, "title-00", p.Items()[0])
	assert.Equal(t, "title-13", p.Items()[13])

	// At end-of-list LoadMore is a no-op and hits the backend zero times.
	before := len(catalog.fetches)
	require.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, catalog.fetches, before)
	assert.Len(t, p.Items(), 14)
}

func TestPager_ExactMultipleNeedsEmptyPage(t *testing.T) {
	// 20 items at limit 10: page 2 is full, so the pager only learns the
	// list ended from the empty page 3.
	catalog := &fakeCatalog{titles: makeTitles(20)}
	p := NewPager(catalog.fetch, 10)

	require.NoError(t, p.Load(context.Background()))
	require.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, p.Items(), 20)
	assert.True(t, p.HasMore())

	require.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, p.Items(), 20, "empty page appends nothing")
	assert.False(t, p.HasMore())
}

func TestPager_FailedLoadPreservesState(t *testing.T) {
	catalog := &fakeCatalog{titles: makeTitles(25), failOn: 2}
	p := NewPager(catalog.fetch, 10)

	require.NoError(t, p.Load(context.Background()))
	require.Len(t, p.Items(), 10)

	err := p.LoadMore(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateErrored, p.State())
	assert.Equal(t, err, p.Err())
	assert.Len(t, p.Items(), 10, "failed page must not disturb loaded items")
	assert.Equal(t, 1, p.Page(), "failed page advance is rolled back")
	assert.True(t, p.HasMore())

	// Clearing the fault and retrying resumes from the same page.
	catalog.failOn = 0
	require.NoError(t, p.LoadMore(context.Background()))
	assert.Equal(t, StateLoaded, p.State())
	assert.NoError(t, p.Err())
	assert.Len(t, p.Items(), 20)
	assert.Equal(t, 2, p.Page())
}

func TestPager_SetSearchRewindsToPageOne(t *testing.T) {
	catalog := &fakeCatalog{titles: makeTitles(14)}
	p := NewPager(catalog.fetch, 10)

	require.NoError(t, p.Load(context.Background()))
	require.NoError(t, p.LoadMore(context.Background()))
	require.Len(t, p.Items(), 14)
	require.False(t, p.HasMore())

	p.SetSearch("title-0")
	assert.Equal(t, 1, p.Page())
	assert.True(t, p.HasMore(), "new search starts a fresh list")
	assert.Len(t, p.Items(), 14, "items replaced only on the next Load")

	require.NoError(t, p.Load(context.Background()))
	assert.Len(t, p.Items(), 10, "page 1 replaces, never appends")
	for _, title := range p.Items() {
		assert.Contains(t, title, "title-0")
	}
}

func TestPager_DefaultLimit(t *testing.T) {
	catalog := &fakeCatalog{titles: makeTitles(3)}
	p := NewPager(catalog.fetch, 0)

	require.NoError(t, p.Load(context.Background()))
	assert.Len(t, p.Items(), 3)
	assert.False(t, p.HasMore())
}
