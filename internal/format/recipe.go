package format

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/hammamikhairi/mixr/internal/domain"
)

// NoRatings is shown for a recipe nobody has rated yet.
const NoRatings = "No ratings"

// IngredientList renders each ingredient as "Name (amount)", or just
// "Name" when the trimmed amount is empty. Order is preserved.
func IngredientList(ingredients []domain.RecipeIngredient) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		amount := strings.TrimSpace(ing.Amount)
		if amount == "" {
			out = append(out, ing.Name)
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", ing.Name, amount))
	}
	return out
}

// RecipeSteps numbers steps from 1: "1. Muddle mint".
func RecipeSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for i, step := range steps {
		out = append(out, fmt.Sprintf("%d. %s", i+1, step))
	}
	return out
}

// RatingDisplay renders an aggregate as "4.3 (42 ratings)", or NoRatings
// when the count is zero. Only the count noun agrees with the count.
func RatingDisplay(agg domain.RatingAggregate) string {
	if agg.TotalRatings == 0 {
		return NoRatings
	}
	label := "ratings"
	if agg.TotalRatings == 1 {
		label = "rating"
	}
	return fmt.Sprintf("%s (%d %s)", OneDecimal(agg.AverageRating), agg.TotalRatings, label)
}

// OneDecimal formats f with exactly one fractional digit. Rounding is
// applied to the exact binary value of f, half away from zero, so
// 3.666 gives "3.7", 4.25 gives "4.3" and 4.35 (stored just below
// 4.35) gives "4.3".
func OneDecimal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// tenths = floor(f*10 + 1/2), computed exactly.
	r := new(big.Rat).SetFloat64(f)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	tenths := new(big.Int).Quo(r.Num(), r.Denom())

	whole, frac := new(big.Int).QuoRem(tenths, big.NewInt(10), new(big.Int))
	return fmt.Sprintf("%s%s.%s", sign, whole.String(), frac.String())
}
