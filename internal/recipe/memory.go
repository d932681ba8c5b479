// Package recipe provides recipe sources and the helpers that derive
// display data from a recipe.
package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[int]*domain.Recipe
	moods   map[int]*domain.Mood
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with classic cocktails.
func NewMemorySource(log *logger.Logger) *MemorySource {
	if log == nil {
		log = logger.Discard()
	}
	src := &MemorySource{
		recipes: make(map[int]*domain.Recipe),
		moods:   make(map[int]*domain.Mood),
		log:     log,
	}
	src.seed()
	return src
}

// List returns all recipes ordered by name.
func (s *MemorySource) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id int) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %d", id)
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

// Search returns recipes whose name, description, mood, or ingredient
// names contain the query, ordered by name.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.Recipe
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ByMood returns recipes generated for the given mood, ordered by name.
func (s *MemorySource) ByMood(ctx context.Context, moodID int) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.moods[moodID]; !ok {
		return nil, domain.ErrNotFound
	}
	var out []domain.Recipe
	for _, r := range s.recipes {
		if r.MoodID == moodID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Moods returns the known moods ordered by ID.
func (s *MemorySource) Moods(ctx context.Context) ([]domain.Mood, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Mood, 0, len(s.moods))
	for _, m := range s.moods {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	if r.Mood != nil && strings.Contains(strings.ToLower(r.Mood.Name), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// seed populates the source with built-in recipes.
func (s *MemorySource) seed() {
	for _, m := range seedMoods() {
		s.moods[m.ID] = m
	}
	recipes := []*domain.Recipe{
		mojito(),
		margarita(),
		negroni(),
		oldFashioned(),
	}
	for _, r := range recipes {
		r.Mood = s.moods[r.MoodID]
		s.recipes[r.ID] = r
	}
	s.log.Debug("seeded %d recipes, %d moods", len(recipes), len(s.moods))
}

const seededAt = "2024-01-01T00:00:00Z"

func seedMoods() []*domain.Mood {
	return []*domain.Mood{
		{ID: 1, Emoji: "🎉", Name: "Celebratory", Description: "Something to toast with", ExampleDrinks: "Margarita, French 75", CreatedAt: seededAt},
		{ID: 2, Emoji: "🥃", Name: "Contemplative", Description: "Slow sipping, low light", ExampleDrinks: "Old Fashioned, Negroni", CreatedAt: seededAt},
		{ID: 3, Emoji: "🌴", Name: "Relaxed", Description: "Laid back vibes", ExampleDrinks: "Mojito, Daiquiri", CreatedAt: seededAt},
	}
}

func mojito() *domain.Recipe {
	return &domain.Recipe{
		ID:          1,
		Name:        "Mojito",
		Description: "A refreshing Cuban highball of rum, lime, and mint.",
		MoodID:      3,
		CreatedAt:   seededAt,
		Ingredients: []domain.RecipeIngredient{
			{ID: 1, Name: "White Rum", Amount: "60ml"},
			{ID: 2, Name: "Fresh Lime Juice", Amount: "30ml"},
			{ID: 3, Name: "Simple Syrup", Amount: "15ml"},
			{ID: 4, Name: "Fresh Mint Leaves", Amount: "6-8 leaves"},
			{ID: 5, Name: "Soda Water", Amount: ""},
		},
		Steps: []string{
			"Muddle mint leaves with simple syrup in a glass",
			"Add lime juice and rum",
			"Fill with ice and top with soda water",
			"Stir gently and garnish with mint sprig",
		},
		Equipment: []domain.RecipeEquipment{
			{ID: 1, Name: "Muddler"},
			{ID: 2, Name: "Highball Glass"},
			{ID: 3, Name: "Jigger"},
		},
	}
}

func margarita() *domain.Recipe {
	return &domain.Recipe{
		ID:          2,
		Name:        "Margarita",
		Description: "Tequila, orange liqueur, and lime, shaken hard and served up.",
		MoodID:      1,
		CreatedAt:   seededAt,
		Ingredients: []domain.RecipeIngredient{
			{ID: 6, Name: "Blanco Tequila", Amount: "50ml"},
			{ID: 7, Name: "Triple Sec", Amount: "20ml"},
			{ID: 2, Name: "Fresh Lime Juice", Amount: "25ml"},
			{ID: 8, Name: "Salt", Amount: "  "},
		},
		Steps: []string{
			"Rim a chilled coupe with salt",
			"Shake tequila, triple sec, and lime with ice",
			"Double strain into the coupe",
		},
		Equipment: []domain.RecipeEquipment{
			{ID: 4, Name: "Shaker"},
			{ID: 3, Name: "Jigger"},
			{ID: 5, Name: "Strainer"},
			{ID: 5, Name: "Strainer"},
			{ID: 6, Name: "Coupe Glass"},
		},
	}
}

func negroni() *domain.Recipe {
	return &domain.Recipe{
		ID:          3,
		Name:        "Negroni",
		Description: "Equal parts gin, Campari, and sweet vermouth.",
		MoodID:      2,
		CreatedAt:   seededAt,
		Ingredients: []domain.RecipeIngredient{
			{ID: 9, Name: "Gin", Amount: "30ml"},
			{ID: 10, Name: "Campari", Amount: "30ml"},
			{ID: 11, Name: "Sweet Vermouth", Amount: "30ml"},
			{ID: 12, Name: "Orange Peel", Amount: "1 strip"},
		},
		Steps: []string{
			"Stir gin, Campari, and vermouth over ice",
			"Strain over a large cube",
			"Express the orange peel and drop it in",
		},
		Equipment: []domain.RecipeEquipment{
			{ID: 7, Name: "Mixing Glass"},
			{ID: 8, Name: "Bar Spoon"},
			{ID: 9, Name: "Rocks Glass"},
		},
	}
}

func oldFashioned() *domain.Recipe {
	return &domain.Recipe{
		ID:          4,
		Name:        "Old Fashioned",
		Description: "Whiskey, sugar, and bitters. The original cocktail.",
		MoodID:      2,
		CreatedAt:   seededAt,
		Ingredients: []domain.RecipeIngredient{
			{ID: 13, Name: "Bourbon", Amount: "60ml"},
			{ID: 14, Name: "Demerara Syrup", Amount: "5ml"},
			{ID: 15, Name: "Angostura Bitters", Amount: "2 dashes"},
			{ID: 12, Name: "Orange Peel", Amount: "1 strip"},
		},
		Steps: []string{
			"Stir bourbon, syrup, and bitters over ice",
			"Strain over a large cube",
			"Garnish with orange peel",
		},
		Equipment: []domain.RecipeEquipment{
			{ID: 7, Name: "Mixing Glass"},
			{ID: 8, Name: "Bar Spoon"},
			{ID: 9, Name: "Rocks Glass"},
		},
	}
}
