package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hammamikhairi/mixr/internal/domain"
)

var mojitoIngredients = []domain.RecipeIngredient{
	{ID: 1, Name: "White Rum", Amount: "60ml"},
	{ID: 2, Name: "Fresh Lime Juice", Amount: "30ml"},
	{ID: 3, Name: "Simple Syrup", Amount: "15ml"},
	{ID: 4, Name: "Fresh Mint Leaves", Amount: "6-8 leaves"},
	{ID: 5, Name: "Soda Water", Amount: ""},
}

func TestIngredientList(t *testing.T) {
	got := IngredientList(mojitoIngredients)
	require.Equal(t, []string{
		"White Rum (60ml)",
		"Fresh Lime Juice (30ml)",
		"Simple Syrup (15ml)",
		"Fresh Mint Leaves (6-8 leaves)",
		"Soda Water",
	}, got)
}

func TestIngredientListAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"trimmed amount", "  60ml  ", "Vodka (60ml)"},
		{"whitespace-only amount", "   ", "Vodka"},
		{"tab and newline", "\t\n", "Vodka"},
		{"empty amount", "", "Vodka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IngredientList([]domain.RecipeIngredient{{ID: 1, Name: "Vodka", Amount: tt.amount}})
			require.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestIngredientListEmpty(t *testing.T) {
	got := IngredientList(nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestRecipeSteps(t *testing.T) {
	require.Equal(t,
		[]string{"1. Muddle mint", "2. Add rum", "3. Stir"},
		RecipeSteps([]string{"Muddle mint", "Add rum", "Stir"}))
	require.Equal(t, []string{"1. Pour and serve"}, RecipeSteps([]string{"Pour and serve"}))
	require.Equal(t, []string{}, RecipeSteps(nil))
}

func TestRecipeStepsNumbering(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		steps := rapid.SliceOf(rapid.String()).Draw(rt, "steps")
		got := RecipeSteps(steps)
		if len(got) != len(steps) {
			rt.Fatalf("expected %d lines, got %d", len(steps), len(got))
		}
		for i, line := range got {
			prefix := fmt.Sprintf("%d. ", i+1)
			if !strings.HasPrefix(line, prefix) || line[len(prefix):] != steps[i] {
				rt.Fatalf("line %d: %q", i, line)
			}
		}
	})
}

func TestRatingDisplay(t *testing.T) {
	tests := []struct {
		name  string
		avg   float64
		total int
		want  string
	}{
		{"no ratings", 0, 0, "No ratings"},
		{"no ratings ignores average", 4.8, 0, "No ratings"},
		{"plural", 4.3, 42, "4.3 (42 ratings)"},
		{"singular", 5.0, 1, "5.0 (1 rating)"},
		{"rounds to one decimal", 3.666, 10, "3.7 (10 ratings)"},
		{"whole number keeps .0", 4, 5, "4.0 (5 ratings)"},
		{"exact tie rounds up", 4.25, 4, "4.3 (4 ratings)"},
		{"below-tie binary value rounds down", 4.35, 20, "4.3 (20 ratings)"},
		{"rounds into next integer", 4.96, 3, "5.0 (3 ratings)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RatingDisplay(domain.RatingAggregate{AverageRating: tt.avg, TotalRatings: tt.total})
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOneDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{0.05, "0.1"},
		{1.25, "1.3"},
		{2.75, "2.8"},
		{-1.25, "-1.3"},
		{123.449, "123.4"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, OneDecimal(tt.in))
		})
	}
}
