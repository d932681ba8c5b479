package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
)

func TestMemorySourceList(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	recipes, err := src.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(recipes), 4)
	for i := 1; i < len(recipes); i++ {
		require.LessOrEqual(t, recipes[i-1].Name, recipes[i].Name, "list must be sorted by name")
	}
}

func TestMemorySourceNilLogger(t *testing.T) {
	src := NewMemorySource(nil)

	_, err := src.Get(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrNotFound)

	found, err := src.Search(context.Background(), "mint")
	require.NoError(t, err)
	require.NotEmpty(t, found)
}

func TestMemorySourceGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int
		wantErr error
	}{
		{"mojito", 1, nil},
		{"negroni", 3, nil},
		{"missing", 999, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := src.Get(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.id, r.ID)
			require.NotEmpty(t, r.Steps, "recipe has no steps")
			require.NotEmpty(t, r.Ingredients, "recipe has no ingredients")
			require.NotNil(t, r.Mood, "seeded recipes carry their mood")
		})
	}
}

func TestMemorySourceGetReturnsCopy(t *testing.T) {
	src := NewMemorySource(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	r, err := src.Get(ctx, 1)
	require.NoError(t, err)
	r.Name = "Changed"

	again, err := src.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Mojito", again.Name)
}

func TestMemorySourceSearch(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"mojito", []string{"Mojito"}},
		{"LIME", []string{"Margarita", "Mojito"}},
		{"orange peel", []string{"Negroni", "Old Fashioned"}},
		{"relaxed", []string{"Mojito"}},
		{"nonexistent-query-xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := src.Search(ctx, tt.query)
			require.NoError(t, err)
			var names []string
			for _, r := range results {
				names = append(names, r.Name)
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestMemorySourceByMood(t *testing.T) {
	src := NewMemorySource(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	recipes, err := src.ByMood(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	require.Equal(t, "Negroni", recipes[0].Name)

	_, err = src.ByMood(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)

	moods, err := src.Moods(ctx)
	require.NoError(t, err)
	require.Len(t, moods, 3)
	require.Equal(t, 1, moods[0].ID)
}
