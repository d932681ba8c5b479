package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
)

func ptr(s string) *string { return &s }

func newStore(t *testing.T) (*MemoryStore, context.Context) {
	t.Helper()
	return NewMemoryStore(logger.New(logger.LevelOff, nil)), context.Background()
}

func TestMemoryStoreSubmit(t *testing.T) {
	store, ctx := newStore(t)

	r, err := store.Submit(ctx, "user-1", 1, domain.SubmitRatingRequest{Stars: 4, Review: ptr("Bright and minty")})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Equal(t, 4, r.Stars)
	require.Equal(t, "Bright and minty", *r.Review)
	require.Equal(t, r.CreatedAt, r.UpdatedAt)

	// Resubmitting replaces the rating but keeps its identity.
	again, err := store.Submit(ctx, "user-1", 1, domain.SubmitRatingRequest{Stars: 2})
	require.NoError(t, err)
	require.Equal(t, r.ID, again.ID)
	require.Equal(t, r.CreatedAt, again.CreatedAt)
	require.Equal(t, 2, again.Stars)
	require.Nil(t, again.Review)

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, agg.TotalRatings)
}

func TestMemoryStoreOwnsReviewText(t *testing.T) {
	store, ctx := newStore(t)

	review := "Bright and minty"
	r, err := store.Submit(ctx, "user-1", 1, domain.SubmitRatingRequest{Stars: 4, Review: &review})
	require.NoError(t, err)

	review = "edited by caller"
	*r.Review = "edited through result"

	page, err := store.List(ctx, 1, domain.RatingListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Bright and minty", *page.Items[0].Review)

	*page.Items[0].Review = "edited through page"
	page, err = store.List(ctx, 1, domain.RatingListParams{})
	require.NoError(t, err)
	require.Equal(t, "Bright and minty", *page.Items[0].Review)
}

func TestMemoryStoreNilLogger(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	_, err := store.Submit(ctx, "user-1", 1, domain.SubmitRatingRequest{Stars: 5})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "user-1", 1))
}

func TestMemoryStoreSubmitRejectsInvalid(t *testing.T) {
	store, ctx := newStore(t)

	tests := []struct {
		name string
		req  domain.SubmitRatingRequest
	}{
		{"zero stars", domain.SubmitRatingRequest{Stars: 0}},
		{"six stars", domain.SubmitRatingRequest{Stars: 6}},
		{"review too long", domain.SubmitRatingRequest{Stars: 3, Review: ptr(strings.Repeat("x", domain.MaxReviewLength+1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Submit(ctx, "user-1", 1, tt.req)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, agg.TotalRatings)
}

func TestMemoryStoreAggregate(t *testing.T) {
	store, ctx := newStore(t)

	empty, err := store.Aggregate(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 7, empty.RecipeID)
	require.Zero(t, empty.TotalRatings)
	require.Zero(t, empty.AverageRating)
	require.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, empty.RatingDistribution)

	for i, stars := range []int{5, 4, 4, 2} {
		_, err := store.Submit(ctx, fmt.Sprintf("user-%d", i), 7, domain.SubmitRatingRequest{Stars: stars})
		require.NoError(t, err)
	}
	// A rating on another recipe must not leak in.
	_, err = store.Submit(ctx, "user-0", 8, domain.SubmitRatingRequest{Stars: 1})
	require.NoError(t, err)

	agg, err := store.Aggregate(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 4, agg.TotalRatings)
	require.InDelta(t, 3.75, agg.AverageRating, 1e-9)
	require.Equal(t, 2, agg.RatingDistribution["4"])
	require.Equal(t, 0, agg.RatingDistribution["1"])
}

func TestMemoryStoreListSorts(t *testing.T) {
	store, ctx := newStore(t)
	for i, stars := range []int{3, 5, 1, 4} {
		_, err := store.Submit(ctx, fmt.Sprintf("user-%d", i), 1, domain.SubmitRatingRequest{Stars: stars})
		require.NoError(t, err)
	}

	tests := []struct {
		sort domain.RatingSort
		want []int
	}{
		{domain.RatingSortNewest, []int{4, 1, 5, 3}},
		{domain.RatingSortOldest, []int{3, 5, 1, 4}},
		{domain.RatingSortHighest, []int{5, 4, 3, 1}},
		{domain.RatingSortLowest, []int{1, 3, 4, 5}},
		{"", []int{4, 1, 5, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			page, err := store.List(ctx, 1, domain.RatingListParams{Sort: tt.sort})
			require.NoError(t, err)
			var got []int
			for _, r := range page.Items {
				got = append(got, r.Stars)
			}
			require.Equal(t, tt.want, got)
			require.Equal(t, domain.DefaultPageLimit, page.Pagination.Limit)
			require.False(t, page.Pagination.HasMore)
		})
	}
}

func TestMemoryStoreListPages(t *testing.T) {
	store, ctx := newStore(t)
	for i := 0; i < 5; i++ {
		_, err := store.Submit(ctx, fmt.Sprintf("user-%d", i), 1, domain.SubmitRatingRequest{Stars: 3})
		require.NoError(t, err)
	}

	page, err := store.List(ctx, 1, domain.RatingListParams{
		PaginationQueryParams: domain.PaginationQueryParams{Limit: 2, Offset: 2},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 5, page.Pagination.Total)
	require.True(t, page.Pagination.HasMore)

	past, err := store.List(ctx, 1, domain.RatingListParams{
		PaginationQueryParams: domain.PaginationQueryParams{Offset: 10},
	})
	require.NoError(t, err)
	require.NotNil(t, past.Items)
	require.Empty(t, past.Items)
	require.False(t, past.Pagination.HasMore)
}

func TestMemoryStoreDelete(t *testing.T) {
	store, ctx := newStore(t)
	_, err := store.Submit(ctx, "user-1", 1, domain.SubmitRatingRequest{Stars: 5})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "user-1", 1))
	require.ErrorIs(t, store.Delete(ctx, "user-1", 1), domain.ErrNotFound)

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, agg.TotalRatings)
}

// TestAggregateMatchesMean checks the aggregate against a direct mean of
// whatever valid ratings were submitted.
func TestAggregateMatchesMean(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		store := NewMemoryStore(logger.New(logger.LevelOff, nil))
		ctx := context.Background()

		stars := rapid.SliceOfN(rapid.IntRange(domain.MinStarRating, domain.MaxStarRating), 1, 30).Draw(rt, "stars")
		sum := 0
		for i, s := range stars {
			if _, err := store.Submit(ctx, fmt.Sprintf("u%d", i), 1, domain.SubmitRatingRequest{Stars: s}); err != nil {
				rt.Fatalf("submit: %v", err)
			}
			sum += s
		}

		agg, err := store.Aggregate(ctx, 1)
		if err != nil {
			rt.Fatalf("aggregate: %v", err)
		}
		if agg.TotalRatings != len(stars) {
			rt.Fatalf("total %d, want %d", agg.TotalRatings, len(stars))
		}
		want := float64(sum) / float64(len(stars))
		if diff := agg.AverageRating - want; diff > 1e-9 || diff < -1e-9 {
			rt.Fatalf("average %v, want %v", agg.AverageRating, want)
		}
	})
}
