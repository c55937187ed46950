package brewing

import "github.com/feybrew/cauldron/internal/domain"

// ResolveRecipe finds the recipe whose unordered element requirement equals
// {a, b}. Linear scan in table order; the first match wins, so duplicate-pair
// recipes (not expected, but tolerated) resolve deterministically. Returns
// nil when no recipe matches.
func ResolveRecipe(recipes []domain.Recipe, a, b domain.Element) *domain.Recipe {
	for i := range recipes {
		if recipes[i].MatchesPair(a, b) {
			return &recipes[i]
		}
	}
	return nil
}

// RecipeIndex is a lookup table keyed by the sorted element pair. It exists
// because the catalog is consulted once per pair on every pairing change;
// first-in-table-order still wins when two recipes claim the same pair.
type RecipeIndex struct {
	byPair map[string]*domain.Recipe
}

// NewRecipeIndex builds an index over the catalog in table order.
func NewRecipeIndex(recipes []domain.Recipe) *RecipeIndex {
	idx := &RecipeIndex{byPair: make(map[string]*domain.Recipe, len(recipes))}
	for i := range recipes {
		key := domain.ElementPair{First: recipes[i].ElementA, Second: recipes[i].ElementB}.Key()
		if _, taken := idx.byPair[key]; !taken {
			idx.byPair[key] = &recipes[i]
		}
	}
	return idx
}

// Resolve returns the recipe for the unordered pair {a, b}, or nil.
func (idx *RecipeIndex) Resolve(a, b domain.Element) *domain.Recipe {
	return idx.byPair[domain.ElementPair{First: a, Second: b}.Key()]
}

// AggregateEffects resolves every pair against the catalog and folds matches
// by recipe name into potency counts. Effects keep the order in which their
// recipe first resolved. Pairs that resolve to nothing are dropped; the
// player may intentionally pair leftover elements with no valid recipe.
func AggregateEffects(recipes []domain.Recipe, pairs []domain.ElementPair) []domain.PairedEffect {
	idx := NewRecipeIndex(recipes)

	var effects []domain.PairedEffect
	position := make(map[string]int)

	for _, pair := range pairs {
		recipe := idx.Resolve(pair.First, pair.Second)
		if recipe == nil {
			continue
		}
		if at, seen := position[recipe.Name]; seen {
			effects[at].Potency++
			continue
		}
		position[recipe.Name] = len(effects)
		effects = append(effects, domain.PairedEffect{Recipe: *recipe, Potency: 1})
	}
	return effects
}
