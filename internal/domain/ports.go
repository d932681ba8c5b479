package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory (seeded),
// file-based, or backed by the MIXR API client.
type RecipeSource interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id int) (*Recipe, error)
	Search(ctx context.Context, query string) ([]Recipe, error)
}

// RatingStore persists recipe ratings. One rating per (user, recipe) pair.
type RatingStore interface {
	Submit(ctx context.Context, userID string, recipeID int, req SubmitRatingRequest) (*RecipeRating, error)
	List(ctx context.Context, recipeID int, params RatingListParams) (PaginatedResponse[RecipeRating], error)
	Delete(ctx context.Context, userID string, recipeID int) error
	Aggregate(ctx context.Context, recipeID int) (*RatingAggregate, error)
}
