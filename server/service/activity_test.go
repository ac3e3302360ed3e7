package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/utils"
)

// fakeSource serves a fixed, newest-first slice through the paging
// contract the real repositories implement.
func fakeSource(kind string, times []time.Time) FeedSource {
	records := make([]dto.ActivityRecord, len(times))
	for i, t := range times {
		records[i] = dto.ActivityRecord{
			ID:         fmt.Sprintf("%s-%d", kind, i),
			Kind:       kind,
			OccurredAt: utils.NewJsonTime(t),
		}
	}
	return FeedSource{
		Kind: kind,
		Fetch: func(offset, limit int) ([]dto.ActivityRecord, error) {
			if offset >= len(records) {
				return nil, nil
			}
			end := offset + limit
			if end > len(records) {
				end = len(records)
			}
			return records[offset:end], nil
		},
	}
}

func minuteSeries(base time.Time, offsets ...int) []time.Time {
	out := make([]time.Time, len(offsets))
	for i, m := range offsets {
		out[i] = base.Add(-time.Duration(m) * time.Minute)
	}
	return out
}

func TestMergeFeedsOrdersNewestFirst(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sources := []FeedSource{
		fakeSource("checkout", minuteSeries(base, 0, 4, 8)),
		fakeSource("lease", minuteSeries(base, 1, 5)),
		fakeSource("dispose", minuteSeries(base, 2, 3, 9)),
	}

	items, hasMore, err := MergeFeeds(sources, 1, 10)
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, items, 8)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].OccurredAt.After(items[i-1].OccurredAt.Time),
			"item %d out of order", i)
	}
	assert.Equal(t, "checkout-0", items[0].ID)
	assert.Equal(t, "lease-0", items[1].ID)
	assert.Equal(t, "dispose-2", items[7].ID)
}

func TestMergeFeedsPagination(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sources := []FeedSource{
		fakeSource("checkout", minuteSeries(base, 0, 2, 4, 6, 8, 10)),
		fakeSource("checkin", minuteSeries(base, 1, 3, 5, 7, 9)),
	}

	page1, hasMore, err := MergeFeeds(sources, 1, 4)
	require.NoError(t, err)
	assert.True(t, hasMore)
	require.Len(t, page1, 4)

	page2, hasMore, err := MergeFeeds(sources, 2, 4)
	require.NoError(t, err)
	assert.True(t, hasMore)
	require.Len(t, page2, 4)

	// consecutive pages share no ids and stay in global order
	seen := map[string]bool{}
	for _, v := range page1 {
		seen[v.ID] = true
	}
	for _, v := range page2 {
		assert.False(t, seen[v.ID], "id %s repeated across pages", v.ID)
	}
	assert.False(t, page2[0].OccurredAt.After(page1[3].OccurredAt.Time))

	page3, hasMore, err := MergeFeeds(sources, 3, 4)
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Len(t, page3, 3)
}

// A page deep into the feed must still surface a kind whose records are
// sparse, which a fixed fetch-window approach misses.
func TestMergeFeedsDeepPageSeesSparseKind(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	dense := make([]time.Time, 40)
	for i := range dense {
		dense[i] = base.Add(-time.Duration(i) * time.Minute)
	}
	sources := []FeedSource{
		fakeSource("checkout", dense),
		fakeSource("dispose", minuteSeries(base, 35)),
	}

	items, _, err := MergeFeeds(sources, 4, 10)
	require.NoError(t, err)
	found := false
	for _, v := range items {
		if v.Kind == "dispose" {
			found = true
		}
	}
	assert.True(t, found, "sparse kind missing from deep page")
}

func TestMergeFeedsEmptySources(t *testing.T) {
	items, hasMore, err := MergeFeeds(nil, 1, 10)
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Empty(t, items)
}
