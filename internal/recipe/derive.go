package recipe

import "github.com/hammamikhairi/mixr/internal/domain"

// IngredientCount returns the number of ingredients in r.
func IngredientCount(r *domain.Recipe) int {
	if r == nil {
		return 0
	}
	return len(r.Ingredients)
}

// StepCount returns the number of steps in r.
func StepCount(r *domain.Recipe) int {
	if r == nil {
		return 0
	}
	return len(r.Steps)
}

// EquipmentNames returns the distinct equipment names of r in the order
// they first appear. Names are compared exactly.
func EquipmentNames(r *domain.Recipe) []string {
	if r == nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(r.Equipment))
	out := make([]string, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		if _, dup := seen[e.Name]; dup {
			continue
		}
		seen[e.Name] = struct{}{}
		out = append(out, e.Name)
	}
	return out
}
