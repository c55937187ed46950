package domain

import "time"

// Category is the crafted-item class. Categories are closed and mutually
// exclusive within one crafting attempt.
type Category string

const (
	CategoryElixir Category = "elixir"
	CategoryBomb   Category = "bomb"
	CategoryOil    Category = "oil"
)

// KnownCategories lists every valid category.
var KnownCategories = []Category{CategoryElixir, CategoryBomb, CategoryOil}

// Recipe maps an unordered element pair to a named, categorized effect.
type Recipe struct {
	ID         int       `json:"recipe_id"`
	Name       string    `json:"name"`
	ElementA   Element   `json:"element_a"`
	ElementB   Element   `json:"element_b"`
	Category   Category  `json:"category"`
	Template   string    `json:"template,omitempty"`
	Secret     bool      `json:"secret,omitempty"`
	UnlockCode string    `json:"-"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// MatchesPair reports whether the recipe's element requirement equals the
// unordered set {a, b}.
func (r Recipe) MatchesPair(a, b Element) bool {
	return (r.ElementA == a && r.ElementB == b) || (r.ElementA == b && r.ElementB == a)
}

// PairedEffect is a resolved recipe with its potency: the number of pairs in
// the current attempt that resolved to the same recipe. Always >= 1.
type PairedEffect struct {
	Recipe  Recipe `json:"recipe"`
	Potency int    `json:"potency"`
}

// RecipeUnlock records that a character has unlocked a secret recipe.
type RecipeUnlock struct {
	CharacterID string    `json:"character_id"`
	RecipeID    int       `json:"recipe_id"`
	UnlockedAt  time.Time `json:"unlocked_at,omitempty"`
}
