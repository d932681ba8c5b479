// Package domain defines the core types and interfaces for the MIXR library.
// All other packages depend on domain; domain depends on nothing.
package domain

// RecipeIngredient is an ingredient as it appears inside a recipe, with a
// free-form amount. An empty or whitespace-only Amount means unspecified.
type RecipeIngredient struct {
	ID     int     `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Icon   *string `json:"icon" yaml:"icon"`
	Amount string  `json:"amount" yaml:"amount"`
}

// RecipeEquipment is a piece of equipment referenced by a recipe.
type RecipeEquipment struct {
	ID   int     `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Icon *string `json:"icon" yaml:"icon"`
}

// Mood is the vibe a recipe was generated for.
type Mood struct {
	ID            int     `json:"id" yaml:"id"`
	Emoji         string  `json:"emoji" yaml:"emoji"`
	Name          string  `json:"name" yaml:"name"`
	Description   string  `json:"description" yaml:"description"`
	ExampleDrinks string  `json:"exampleDrinks" yaml:"exampleDrinks"`
	ImageName     *string `json:"imageName" yaml:"imageName"`
	CreatedAt     string  `json:"createdAt" yaml:"createdAt"`
}

// Recipe is a complete cocktail recipe.
type Recipe struct {
	ID          int                `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	MoodID      int                `json:"moodId" yaml:"moodId"`
	CreatedAt   string             `json:"createdAt" yaml:"createdAt"`
	Mood        *Mood              `json:"mood,omitempty" yaml:"mood,omitempty"`
	Ingredients []RecipeIngredient `json:"ingredients" yaml:"ingredients"`
	Steps       []string           `json:"steps" yaml:"steps"`
	Equipment   []RecipeEquipment  `json:"equipment" yaml:"equipment"`
}

// RecipeWithUser is a recipe annotated with the user who generated it.
type RecipeWithUser struct {
	Recipe `yaml:",inline"`
	User   *User `json:"user,omitempty" yaml:"user,omitempty"`
}

// RecipeRating is a single user's rating of a recipe.
type RecipeRating struct {
	ID        string  `json:"id" yaml:"id"`
	RecipeID  int     `json:"recipe_id" yaml:"recipe_id"`
	UserID    string  `json:"user_id" yaml:"user_id"`
	Stars     int     `json:"stars" yaml:"stars"`
	Review    *string `json:"review" yaml:"review"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
	UpdatedAt string  `json:"updated_at" yaml:"updated_at"`
}

// RatingAggregate is a precomputed summary of the ratings for a recipe.
type RatingAggregate struct {
	RecipeID           int            `json:"recipe_id" yaml:"recipe_id"`
	AverageRating      float64        `json:"average_rating" yaml:"average_rating"`
	TotalRatings       int            `json:"total_ratings" yaml:"total_ratings"`
	RatingDistribution map[string]int `json:"rating_distribution" yaml:"rating_distribution"`
}
