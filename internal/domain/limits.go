package domain

// Input limits shared by the client and the API.
const (
	MinStarRating = 1
	MaxStarRating = 5

	// Text lengths are measured in UTF-16 code units, as the API measures them.
	MaxReviewLength = 2000

	MinDisplayNameLength = 3
	MaxDisplayNameLength = 50
)

// Pagination defaults. DefaultPageLimit never exceeds MaxPageLimit.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// DefaultRatingSort is used when a rating list request names no order.
const DefaultRatingSort = RatingSortNewest
