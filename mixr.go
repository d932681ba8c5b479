// Package mixr is the shared library for MIXR, the cocktail recipe app.
//
// It bundles three things front ends need:
//
//   - the MIXR domain types (recipes, moods, ratings, API envelopes);
//   - a process-wide registry for the configured API client
//     ([Initialize], [IsInitialized], [Client]);
//   - pure helpers that format and validate MIXR data.
//
// Call [Initialize] once at startup with the configured client:
//
//	client := mixrclient.New(baseURL)
//	if err := mixr.Initialize(client); err != nil {
//		log.Fatal(err)
//	}
package mixr

import (
	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/format"
	"github.com/hammamikhairi/mixr/internal/logger"
	"github.com/hammamikhairi/mixr/internal/recipe"
	"github.com/hammamikhairi/mixr/internal/registry"
	"github.com/hammamikhairi/mixr/internal/state"
	"github.com/hammamikhairi/mixr/internal/validate"
)

// Version is the library version.
const Version = "0.0.14"

// ── Client registry ──────────────────────────────────────────────

// ErrInvalidArgument is wrapped by every input error the library returns.
var ErrInvalidArgument = domain.ErrInvalidArgument

// ErrNilClient is returned by Initialize when given a nil client.
var ErrNilClient = registry.ErrNilClient

var defaultRegistry = registry.New[any](logger.New(logger.LevelNormal, nil))

// Initialize registers client as the library's API client. Calling it again
// replaces the previous client and logs a warning. A nil client returns
// ErrNilClient and leaves any registered client in place.
func Initialize(client any) error {
	return defaultRegistry.Register(client)
}

// IsInitialized reports whether a client has been registered.
func IsInitialized() bool {
	return defaultRegistry.IsRegistered()
}

// Client returns the registered client, or nil and false if there is none.
func Client() (any, bool) {
	return defaultRegistry.Handle()
}

// SetLogger replaces the logger used for library warnings.
func SetLogger(log *Logger) {
	defaultRegistry.SetLogger(log)
}

// ResetForTesting forgets the registered client. Only tests should call it.
func ResetForTesting() {
	defaultRegistry.ResetForTesting()
}

// ── Logging ──────────────────────────────────────────────────────

type (
	Logger   = logger.Logger
	LogLevel = logger.Level
)

const (
	LogOff     = logger.LevelOff
	LogNormal  = logger.LevelNormal
	LogVerbose = logger.LevelVerbose
)

// NewLogger is logger.New.
var NewLogger = logger.New

// ── Types ────────────────────────────────────────────────────────

type (
	RecipeIngredient      = domain.RecipeIngredient
	RecipeEquipment       = domain.RecipeEquipment
	Recipe                = domain.Recipe
	RecipeWithUser        = domain.RecipeWithUser
	RecipeRating          = domain.RecipeRating
	RatingAggregate       = domain.RatingAggregate
	Mood                  = domain.Mood
	Equipment             = domain.Equipment
	Ingredient            = domain.Ingredient
	User                  = domain.User
	UserPreferences       = domain.UserPreferences
	EquipmentSubcategory  = domain.EquipmentSubcategory
	IngredientSubcategory = domain.IngredientSubcategory
	RatingSort            = domain.RatingSort

	UpdateUserRequest            = domain.UpdateUserRequest
	UpdateUserPreferencesRequest = domain.UpdateUserPreferencesRequest
	AddFavoriteRequest           = domain.AddFavoriteRequest
	SubmitRatingRequest          = domain.SubmitRatingRequest
	GenerateRecipeRequest        = domain.GenerateRecipeRequest

	EquipmentQueryParams  = domain.EquipmentQueryParams
	IngredientQueryParams = domain.IngredientQueryParams
	PaginationQueryParams = domain.PaginationQueryParams
	RatingListParams      = domain.RatingListParams
	PaginationInfo        = domain.PaginationInfo

	EquipmentListResponse           = domain.EquipmentListResponse
	EquipmentResponse               = domain.EquipmentResponse
	EquipmentSubcategoriesResponse  = domain.EquipmentSubcategoriesResponse
	IngredientListResponse          = domain.IngredientListResponse
	IngredientResponse              = domain.IngredientResponse
	IngredientSubcategoriesResponse = domain.IngredientSubcategoriesResponse
	MoodListResponse                = domain.MoodListResponse
	MoodResponse                    = domain.MoodResponse
	RecipeListResponse              = domain.RecipeListResponse
	RecipeResponse                  = domain.RecipeResponse
	UserResponse                    = domain.UserResponse
	UserPreferencesResponse         = domain.UserPreferencesResponse
	AddFavoriteResponse             = domain.AddFavoriteResponse
	RemoveFavoriteResponse          = domain.RemoveFavoriteResponse
	RecipeRatingResponse            = domain.RecipeRatingResponse
	RecipeRatingListResponse        = domain.RecipeRatingListResponse
	RatingAggregateResponse         = domain.RatingAggregateResponse
	DeleteRatingResponse            = domain.DeleteRatingResponse
	HealthResponse                  = domain.HealthResponse
	VersionResponse                 = domain.VersionResponse
)

// APIResponse is the envelope every MIXR endpoint returns.
type APIResponse[T any] = domain.APIResponse[T]

// PaginatedResponse is a page of items plus its position.
type PaginatedResponse[T any] = domain.PaginatedResponse[T]

// Subcategory values in display order.
var (
	EquipmentSubcategories  = domain.EquipmentSubcategories
	IngredientSubcategories = domain.IngredientSubcategories
)

// ── Constants ────────────────────────────────────────────────────

const (
	MinStarRating        = domain.MinStarRating
	MaxStarRating        = domain.MaxStarRating
	MaxReviewLength      = domain.MaxReviewLength
	MinDisplayNameLength = domain.MinDisplayNameLength
	MaxDisplayNameLength = domain.MaxDisplayNameLength
	DefaultPageLimit     = domain.DefaultPageLimit
	MaxPageLimit         = domain.MaxPageLimit
	DefaultRatingSort    = domain.DefaultRatingSort
)

// ── Formatting ───────────────────────────────────────────────────

// Value is a JSON-shaped value accepted by FormatData.
type Value = format.Value

// Undefined returns the absent Value; FormatData reports ok=false for it.
func Undefined() Value { return format.Undefined() }

// Unserializable is what FormatData returns for data it cannot encode.
const Unserializable = format.Unserializable

// FormatData renders data as JSON indented by two spaces. ok is false when
// data is an undefined Value. NaN and infinities print as null and
// functions are left out. Cyclic data yields Unserializable rather than
// an error.
func FormatData(data any) (s string, ok bool) {
	return format.Format(data)
}

// FormatIngredientList renders ingredients as "Name (amount)" or "Name".
func FormatIngredientList(ingredients []RecipeIngredient) []string {
	return format.IngredientList(ingredients)
}

// FormatRecipeSteps numbers steps from 1.
func FormatRecipeSteps(steps []string) []string {
	return format.RecipeSteps(steps)
}

// FormatRatingDisplay renders an aggregate as "4.3 (42 ratings)" or "No ratings".
func FormatRatingDisplay(agg RatingAggregate) string {
	return format.RatingDisplay(agg)
}

// ── Validation ───────────────────────────────────────────────────

// ValidateInput reports whether s is non-empty after trimming whitespace.
func ValidateInput(s string) bool { return validate.NonEmpty(s) }

// ValidateDisplayName reports whether the trimmed name has an allowed length.
func ValidateDisplayName(name string) bool { return validate.DisplayName(name) }

// ValidateStarRating reports whether stars is a whole number of stars in range.
func ValidateStarRating(stars float64) bool { return validate.StarRating(stars) }

// ValidateReviewText reports whether an optional review fits the length limit.
func ValidateReviewText(review *string) bool { return validate.ReviewText(review) }

// ── Recipe helpers ───────────────────────────────────────────────

// IngredientCount returns the number of ingredients in r.
func IngredientCount(r *Recipe) int { return recipe.IngredientCount(r) }

// StepCount returns the number of steps in r.
func StepCount(r *Recipe) int { return recipe.StepCount(r) }

// EquipmentNames returns r's distinct equipment names in first-seen order.
func EquipmentNames(r *Recipe) []string { return recipe.EquipmentNames(r) }

// ── State ────────────────────────────────────────────────────────

// Placeholder is a string value that logs its changes.
type Placeholder = state.Value[string]

// NewPlaceholder creates a Placeholder holding initial. Changes are logged
// at debug level to log, which may be nil.
func NewPlaceholder(initial string, log *Logger) *Placeholder {
	return state.NewValue(initial, log)
}
