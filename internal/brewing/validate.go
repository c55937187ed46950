package brewing

import "github.com/feybrew/cauldron/internal/domain"

// CombinationResult is the verdict of validating a set of paired effects.
type CombinationResult struct {
	Valid    bool            `json:"valid"`
	Category domain.Category `json:"category,omitempty"`
	Reason   string          `json:"reason,omitempty"`
}

// ValidateCombination enforces that the attempt has at least one effect and
// that all effects share one category. Pure function; re-run whenever pairs
// change, and the same input always yields the same verdict.
func ValidateCombination(effects []domain.PairedEffect) CombinationResult {
	if len(effects) == 0 {
		return CombinationResult{Valid: false, Reason: domain.ErrMsgNoEffects}
	}

	category := effects[0].Recipe.Category
	for _, effect := range effects[1:] {
		if effect.Recipe.Category != category {
			return CombinationResult{Valid: false, Reason: domain.ErrMsgMixedCategories}
		}
	}

	return CombinationResult{Valid: true, Category: category}
}
