package domain

// EquipmentSubcategory classifies bar equipment.
type EquipmentSubcategory string

const (
	EquipmentEssential EquipmentSubcategory = "essential"
	EquipmentGlassware EquipmentSubcategory = "glassware"
	EquipmentGarnish   EquipmentSubcategory = "garnish"
	EquipmentAdvanced  EquipmentSubcategory = "advanced"
)

// EquipmentSubcategories lists every equipment subcategory in display order.
var EquipmentSubcategories = []EquipmentSubcategory{
	EquipmentEssential,
	EquipmentGlassware,
	EquipmentGarnish,
	EquipmentAdvanced,
}

// Valid reports whether s is a known equipment subcategory.
func (s EquipmentSubcategory) Valid() bool {
	for _, known := range EquipmentSubcategories {
		if s == known {
			return true
		}
	}
	return false
}

// IngredientSubcategory classifies ingredients.
type IngredientSubcategory string

const (
	IngredientSpirit       IngredientSubcategory = "spirit"
	IngredientWine         IngredientSubcategory = "wine"
	IngredientOtherAlcohol IngredientSubcategory = "other_alcohol"
	IngredientFruit        IngredientSubcategory = "fruit"
	IngredientSpice        IngredientSubcategory = "spice"
	IngredientOther        IngredientSubcategory = "other"
)

// IngredientSubcategories lists every ingredient subcategory in display order.
var IngredientSubcategories = []IngredientSubcategory{
	IngredientSpirit,
	IngredientWine,
	IngredientOtherAlcohol,
	IngredientFruit,
	IngredientSpice,
	IngredientOther,
}

// Valid reports whether s is a known ingredient subcategory.
func (s IngredientSubcategory) Valid() bool {
	for _, known := range IngredientSubcategories {
		if s == known {
			return true
		}
	}
	return false
}

// Equipment is an item in the equipment catalog.
type Equipment struct {
	ID          int                  `json:"id" yaml:"id"`
	Subcategory EquipmentSubcategory `json:"subcategory" yaml:"subcategory"`
	Name        string               `json:"name" yaml:"name"`
	Icon        *string              `json:"icon" yaml:"icon"`
	CreatedAt   string               `json:"createdAt" yaml:"createdAt"`
}

// Ingredient is an item in the ingredient catalog.
type Ingredient struct {
	ID          int                   `json:"id" yaml:"id"`
	Subcategory IngredientSubcategory `json:"subcategory" yaml:"subcategory"`
	Name        string                `json:"name" yaml:"name"`
	Icon        *string               `json:"icon" yaml:"icon"`
	CreatedAt   string                `json:"createdAt" yaml:"createdAt"`
}

// User is a MIXR account.
type User struct {
	ID          string  `json:"id" yaml:"id"`
	Email       *string `json:"email" yaml:"email"`
	DisplayName *string `json:"displayName" yaml:"displayName"`
	CreatedAt   string  `json:"createdAt" yaml:"createdAt"`
}

// UserPreferences holds the equipment and ingredients a user has on hand.
type UserPreferences struct {
	EquipmentIDs  []int `json:"equipmentIds" yaml:"equipmentIds"`
	IngredientIDs []int `json:"ingredientIds" yaml:"ingredientIds"`
}
