package admin_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-ecom-client/admin"
	"github.com/jrsteele09/go-ecom-client/api"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func categoryID(c api.Category) int64 { return c.ID }

func TestPager_DeduplicatesAcrossPages(t *testing.T) {
	pages := map[int][]api.Category{
		1: {{ID: 1, Name: "Tools"}, {ID: 2, Name: "Garden"}},
		2: {{ID: 2, Name: "Garden"}, {ID: 3, Name: "Outdoors"}}, // id 2 repeats
	}

	pager := admin.NewPager(5, categoryID, func(_ context.Context, page, _ int) ([]api.Category, error) {
		return pages[page], nil
	})

	require.NoError(t, pager.LoadMore(context.Background()))
	require.NoError(t, pager.LoadMore(context.Background()))

	items := pager.Items()
	require.Len(t, items, 3)
	seen := map[int64]int{}
	for _, item := range items {
		seen[item.ID]++
	}
	require.Equal(t, map[int64]int{1: 1, 2: 1, 3: 1}, seen)
}

func TestPager_EmptyPageStopsOfferingMore(t *testing.T) {
	fetches := 0
	pager := admin.NewPager(5, categoryID, func(_ context.Context, page, _ int) ([]api.Category, error) {
		fetches++
		if page == 1 {
			return []api.Category{{ID: 1, Name: "Tools"}}, nil
		}
		return nil, nil
	})

	require.NoError(t, pager.LoadMore(context.Background()))
	require.True(t, pager.HasMore())

	require.NoError(t, pager.LoadMore(context.Background()))
	require.False(t, pager.HasMore())

	// Further LoadMore calls are no-ops.
	require.NoError(t, pager.LoadMore(context.Background()))
	require.Equal(t, 2, fetches)
	require.Len(t, pager.Items(), 1)
}

func TestPager_FetchErrorKeepsState(t *testing.T) {
	failing := false
	pager := admin.NewPager(5, categoryID, func(_ context.Context, page, _ int) ([]api.Category, error) {
		if failing {
			return nil, errors.New("backend unreachable")
		}
		return []api.Category{{ID: int64(page)}}, nil
	})

	require.NoError(t, pager.LoadMore(context.Background()))
	failing = true
	require.Error(t, pager.LoadMore(context.Background()))

	require.True(t, pager.HasMore())
	require.Len(t, pager.Items(), 1)
}
