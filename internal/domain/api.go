package domain

// RatingSort orders a list of ratings.
type RatingSort string

const (
	RatingSortNewest  RatingSort = "newest"
	RatingSortOldest  RatingSort = "oldest"
	RatingSortHighest RatingSort = "highest"
	RatingSortLowest  RatingSort = "lowest"
)

// Valid reports whether s is a known sort order.
func (s RatingSort) Valid() bool {
	switch s {
	case RatingSortNewest, RatingSortOldest, RatingSortHighest, RatingSortLowest:
		return true
	default:
		return false
	}
}

// ── Requests ─────────────────────────────────────────────────────

// UpdateUserRequest changes profile fields.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
}

// UpdateUserPreferencesRequest replaces the user's on-hand inventory.
type UpdateUserPreferencesRequest struct {
	EquipmentIDs  []int `json:"equipmentIds"`
	IngredientIDs []int `json:"ingredientIds"`
}

// AddFavoriteRequest marks a recipe as a favorite.
type AddFavoriteRequest struct {
	RecipeID int `json:"recipeId"`
}

// SubmitRatingRequest creates or replaces the caller's rating of a recipe.
type SubmitRatingRequest struct {
	Stars  int     `json:"stars"`
	Review *string `json:"review,omitempty"`
}

// GenerateRecipeRequest asks the backend for a new recipe.
type GenerateRecipeRequest struct {
	EquipmentIDs  []int `json:"equipmentIds,omitempty"`
	IngredientIDs []int `json:"ingredientIds,omitempty"`
	MoodID        int   `json:"moodId"`
}

// ── Query params ─────────────────────────────────────────────────

// EquipmentQueryParams filters the equipment catalog.
type EquipmentQueryParams struct {
	Subcategory EquipmentSubcategory `json:"subcategory,omitempty"`
}

// IngredientQueryParams filters the ingredient catalog.
type IngredientQueryParams struct {
	Subcategory IngredientSubcategory `json:"subcategory,omitempty"`
}

// PaginationQueryParams selects a page of a list.
type PaginationQueryParams struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Normalized returns a copy with Limit in [1, MaxPageLimit] and a
// non-negative Offset. A zero or negative Limit becomes DefaultPageLimit.
func (p PaginationQueryParams) Normalized() PaginationQueryParams {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// RatingListParams selects and orders a page of ratings.
type RatingListParams struct {
	PaginationQueryParams
	Sort RatingSort `json:"sort,omitempty"`
}

// Normalized fills in the default sort and clamps pagination.
func (p RatingListParams) Normalized() RatingListParams {
	p.PaginationQueryParams = p.PaginationQueryParams.Normalized()
	if !p.Sort.Valid() {
		p.Sort = DefaultRatingSort
	}
	return p
}

// ── Responses ────────────────────────────────────────────────────

// APIResponse is the envelope every MIXR endpoint returns.
type APIResponse[T any] struct {
	Success   bool    `json:"success"`
	Data      *T      `json:"data,omitempty"`
	Error     *string `json:"error,omitempty"`
	Timestamp string  `json:"timestamp"`
}

// PaginationInfo describes where a page sits within the full list.
type PaginationInfo struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// PaginatedResponse is a page of items plus its position.
type PaginatedResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// VersionInfo is the payload of the version endpoint.
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// FavoriteResult reports the outcome of a favorite toggle.
type FavoriteResult struct {
	RecipeID  int  `json:"recipeId"`
	Favorited bool `json:"favorited"`
}

// DeleteResult reports whether a delete removed anything.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

type (
	EquipmentListResponse           = APIResponse[[]Equipment]
	EquipmentResponse               = APIResponse[Equipment]
	EquipmentSubcategoriesResponse  = APIResponse[[]EquipmentSubcategory]
	IngredientListResponse          = APIResponse[[]Ingredient]
	IngredientResponse              = APIResponse[Ingredient]
	IngredientSubcategoriesResponse = APIResponse[[]IngredientSubcategory]
	MoodListResponse                = APIResponse[[]Mood]
	MoodResponse                    = APIResponse[Mood]
	RecipeListResponse              = APIResponse[PaginatedResponse[RecipeWithUser]]
	RecipeResponse                  = APIResponse[RecipeWithUser]
	UserResponse                    = APIResponse[User]
	UserPreferencesResponse         = APIResponse[UserPreferences]
	AddFavoriteResponse             = APIResponse[FavoriteResult]
	RemoveFavoriteResponse          = APIResponse[FavoriteResult]
	RecipeRatingResponse            = APIResponse[RecipeRating]
	RecipeRatingListResponse        = APIResponse[PaginatedResponse[RecipeRating]]
	RatingAggregateResponse         = APIResponse[RatingAggregate]
	DeleteRatingResponse            = APIResponse[DeleteResult]
	HealthResponse                  = APIResponse[HealthStatus]
	VersionResponse                 = APIResponse[VersionInfo]
)
