// Package validate checks user input before it is sent to the MIXR API.
//
// The predicates (NonEmpty, DisplayName, StarRating, ReviewText) never fail;
// they report bad input by returning false. The request validators return an
// error wrapping domain.ErrInvalidArgument that names the offending field.
//
// Lengths are counted in UTF-16 code units and trimming strips the same
// characters the MIXR API does, so a value accepted here is accepted by the
// server. An emoji outside the Basic Multilingual Plane counts as two.
package validate

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/hammamikhairi/mixr/internal/domain"
)

// Length returns the length of s in UTF-16 code units.
func Length(s string) int {
	n := 0
	for _, r := range s {
		// Ranging yields U+FFFD for invalid UTF-8, never a surrogate, so
		// RuneLen is always 1 or 2 here.
		n += utf16.RuneLen(r)
	}
	return n
}

// Trim removes leading and trailing whitespace, including the byte order
// mark U+FEFF.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// NonEmpty reports whether s has at least one character after trimming
// leading and trailing whitespace. Whitespace-only input is invalid.
func NonEmpty(s string) bool {
	return Trim(s) != ""
}

// DisplayName reports whether the trimmed name is between
// MinDisplayNameLength and MaxDisplayNameLength characters inclusive.
func DisplayName(name string) bool {
	n := Length(Trim(name))
	return n >= domain.MinDisplayNameLength && n <= domain.MaxDisplayNameLength
}

// StarRating reports whether stars is an integer between MinStarRating and
// MaxStarRating inclusive. NaN, infinities, and fractional values are rejected.
func StarRating(stars float64) bool {
	if math.IsNaN(stars) || math.IsInf(stars, 0) || stars != math.Trunc(stars) {
		return false
	}
	return stars >= domain.MinStarRating && stars <= domain.MaxStarRating
}

// ReviewText reports whether review fits within MaxReviewLength. Reviews are
// optional, so nil and empty are valid. No trimming is applied.
func ReviewText(review *string) bool {
	if review == nil || *review == "" {
		return true
	}
	return Length(*review) <= domain.MaxReviewLength
}

// RatingSort reports whether s names a known rating order.
func RatingSort(s string) bool {
	return domain.RatingSort(s).Valid()
}

// SubmitRating checks a rating submission.
func SubmitRating(req domain.SubmitRatingRequest) error {
	if !StarRating(float64(req.Stars)) {
		return fmt.Errorf("%w: stars must be between %d and %d, got %d",
			domain.ErrInvalidArgument, domain.MinStarRating, domain.MaxStarRating, req.Stars)
	}
	if !ReviewText(req.Review) {
		return fmt.Errorf("%w: review exceeds %d characters",
			domain.ErrInvalidArgument, domain.MaxReviewLength)
	}
	return nil
}

// UpdateUser checks a profile update. A nil display name leaves the name
// unchanged and is always accepted.
func UpdateUser(req domain.UpdateUserRequest) error {
	if req.DisplayName == nil {
		return nil
	}
	if !DisplayName(*req.DisplayName) {
		return fmt.Errorf("%w: display name must be %d-%d characters",
			domain.ErrInvalidArgument, domain.MinDisplayNameLength, domain.MaxDisplayNameLength)
	}
	return nil
}
