package domain

// IngredientInstance is one selected ingredient contributing its elements
// to the brewing pool. An ingredient may list the same element more than
// once; each occurrence counts.
type IngredientInstance struct {
	IngredientID int       `json:"ingredient_id"`
	Name         string    `json:"name"`
	Elements     []Element `json:"elements"`
}

// IngredientRemoval is one entry of the consolidated removal list handed to
// the commit: how many units of an ingredient the attempt consumes.
type IngredientRemoval struct {
	IngredientID int `json:"ingredient_id"`
	Quantity     int `json:"quantity"`
}

// IngredientStock is one row of a character's ingredient ledger.
// Rows whose quantity reaches zero are deleted, never stored as zero.
type IngredientStock struct {
	IngredientID int    `json:"ingredient_id"`
	Name         string `json:"name,omitempty"`
	Quantity     int    `json:"quantity"`
}

// ConsolidateRemovals folds a selection of ingredient instances into the
// removal list the committer consumes, summed per ingredient.
func ConsolidateRemovals(selection []IngredientInstance) []IngredientRemoval {
	counts := make(map[int]int)
	order := make([]int, 0, len(selection))
	for _, inst := range selection {
		if _, seen := counts[inst.IngredientID]; !seen {
			order = append(order, inst.IngredientID)
		}
		counts[inst.IngredientID]++
	}

	removals := make([]IngredientRemoval, 0, len(order))
	for _, id := range order {
		removals = append(removals, IngredientRemoval{IngredientID: id, Quantity: counts[id]})
	}
	return removals
}
