package brewing

import "github.com/feybrew/cauldron/internal/domain"

// BuildElementPool aggregates the elemental tags of every selected ingredient
// instance into a countable multiset. An ingredient that repeats an element
// contributes it once per occurrence. Pure function of the selection; an
// empty selection yields an empty pool.
func BuildElementPool(selection []domain.IngredientInstance) domain.ElementPool {
	pool := make(domain.ElementPool)
	for _, inst := range selection {
		for _, e := range inst.Elements {
			pool[e]++
		}
	}
	return pool
}
