// Package storage provides rating persistence implementations.
package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
	"github.com/hammamikhairi/mixr/internal/validate"
)

// Compile-time interface check.
var _ domain.RatingStore = (*MemoryStore)(nil)

type ratingKey struct {
	userID   string
	recipeID int
}

// entry is a stored rating plus its write sequence, which orders ratings
// by recency independent of clock resolution.
type entry struct {
	rating domain.RecipeRating
	seq    uint64
}

// MemoryStore is an in-memory rating store. Safe for concurrent access.
type MemoryStore struct {
	mu      sync.RWMutex
	ratings map[ratingKey]*entry
	seq     uint64
	log     *logger.Logger
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory rating store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	if log == nil {
		log = logger.Discard()
	}
	return &MemoryStore{
		ratings: make(map[ratingKey]*entry),
		log:     log,
		now:     time.Now,
	}
}

// Submit validates req and stores it as userID's rating of recipeID,
// replacing any earlier rating by the same user. The rating keeps its ID
// and creation time across replacements.
func (s *MemoryStore) Submit(ctx context.Context, userID string, recipeID int, req domain.SubmitRatingRequest) (*domain.RecipeRating, error) {
	if err := validate.SubmitRating(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().UTC().Format(time.RFC3339Nano)
	key := ratingKey{userID: userID, recipeID: recipeID}

	e, ok := s.ratings[key]
	if !ok {
		e = &entry{rating: domain.RecipeRating{
			ID:        uuid.NewString(),
			RecipeID:  recipeID,
			UserID:    userID,
			CreatedAt: stamp,
		}}
		s.ratings[key] = e
	}
	s.seq++
	e.seq = s.seq
	e.rating.Stars = req.Stars
	e.rating.Review = cloneReview(req.Review)
	e.rating.UpdatedAt = stamp

	s.log.Debug("rating saved: user=%s recipe=%d stars=%d", userID, recipeID, req.Stars)
	cp := cloneRating(e.rating)
	return &cp, nil
}

// List returns one page of the ratings for recipeID.
func (s *MemoryStore) List(ctx context.Context, recipeID int, params domain.RatingListParams) (domain.PaginatedResponse[domain.RecipeRating], error) {
	params = params.Normalized()

	s.mu.RLock()
	all := s.forRecipe(recipeID)
	s.mu.RUnlock()

	sortEntries(all, params.Sort)

	page := domain.PaginatedResponse[domain.RecipeRating]{
		Items: []domain.RecipeRating{},
		Pagination: domain.PaginationInfo{
			Total:  len(all),
			Limit:  params.Limit,
			Offset: params.Offset,
		},
	}
	if params.Offset < len(all) {
		end := min(params.Offset+params.Limit, len(all))
		for _, e := range all[params.Offset:end] {
			page.Items = append(page.Items, cloneRating(e.rating))
		}
		page.Pagination.HasMore = end < len(all)
	}
	return page, nil
}

// Delete removes userID's rating of recipeID.
func (s *MemoryStore) Delete(ctx context.Context, userID string, recipeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ratingKey{userID: userID, recipeID: recipeID}
	if _, ok := s.ratings[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.ratings, key)
	s.log.Debug("rating deleted: user=%s recipe=%d", userID, recipeID)
	return nil
}

// Aggregate summarizes the ratings for recipeID. A recipe with no ratings
// yields a zero aggregate with an all-zero distribution.
func (s *MemoryStore) Aggregate(ctx context.Context, recipeID int) (*domain.RatingAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	agg := &domain.RatingAggregate{
		RecipeID:           recipeID,
		RatingDistribution: make(map[string]int, domain.MaxStarRating),
	}
	for stars := domain.MinStarRating; stars <= domain.MaxStarRating; stars++ {
		agg.RatingDistribution[strconv.Itoa(stars)] = 0
	}

	sum := 0
	for key, e := range s.ratings {
		if key.recipeID != recipeID {
			continue
		}
		sum += e.rating.Stars
		agg.TotalRatings++
		agg.RatingDistribution[strconv.Itoa(e.rating.Stars)]++
	}
	if agg.TotalRatings > 0 {
		agg.AverageRating = float64(sum) / float64(agg.TotalRatings)
	}
	return agg, nil
}

// cloneRating copies r so callers never share its review with the store.
func cloneRating(r domain.RecipeRating) domain.RecipeRating {
	r.Review = cloneReview(r.Review)
	return r
}

func cloneReview(review *string) *string {
	if review == nil {
		return nil
	}
	cp := *review
	return &cp
}

// forRecipe copies out the entries for recipeID. Caller holds the lock.
func (s *MemoryStore) forRecipe(recipeID int) []entry {
	var out []entry
	for key, e := range s.ratings {
		if key.recipeID == recipeID {
			out = append(out, *e)
		}
	}
	return out
}

// sortEntries orders entries in place. Star ties fall back to newest first.
func sortEntries(entries []entry, order domain.RatingSort) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch order {
		case domain.RatingSortOldest:
			return a.seq < b.seq
		case domain.RatingSortHighest:
			if a.rating.Stars != b.rating.Stars {
				return a.rating.Stars > b.rating.Stars
			}
		case domain.RatingSortLowest:
			if a.rating.Stars != b.rating.Stars {
				return a.rating.Stars < b.rating.Stars
			}
		}
		return a.seq > b.seq
	})
}
