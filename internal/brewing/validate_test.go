package brewing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feybrew/cauldron/internal/domain"
)

func effectOf(name string, category domain.Category) domain.PairedEffect {
	return domain.PairedEffect{
		Recipe:  domain.Recipe{Name: name, Category: category},
		Potency: 1,
	}
}

func TestValidateCombination(t *testing.T) {
	tests := []struct {
		name           string
		effects        []domain.PairedEffect
		expectValid    bool
		expectCategory domain.Category
		expectReason   string
	}{
		{
			name:         "No effects",
			effects:      nil,
			expectValid:  false,
			expectReason: domain.ErrMsgNoEffects,
		},
		{
			name:           "Single effect",
			effects:        []domain.PairedEffect{effectOf("Healing Draught", domain.CategoryElixir)},
			expectValid:    true,
			expectCategory: domain.CategoryElixir,
		},
		{
			name: "Multiple effects, one category",
			effects: []domain.PairedEffect{
				effectOf("Blast Powder", domain.CategoryBomb),
				effectOf("Wildfire Charge", domain.CategoryBomb),
			},
			expectValid:    true,
			expectCategory: domain.CategoryBomb,
		},
		{
			name: "Mixed categories",
			effects: []domain.PairedEffect{
				effectOf("Healing Draught", domain.CategoryElixir),
				effectOf("Blast Powder", domain.CategoryBomb),
			},
			expectValid:  false,
			expectReason: domain.ErrMsgMixedCategories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCombination(tt.effects)
			assert.Equal(t, tt.expectValid, result.Valid)
			assert.Equal(t, tt.expectCategory, result.Category)
			assert.Equal(t, tt.expectReason, result.Reason)
		})
	}
}

func TestValidateCombination_Idempotent(t *testing.T) {
	effects := []domain.PairedEffect{
		effectOf("Healing Draught", domain.CategoryElixir),
		effectOf("Blast Powder", domain.CategoryBomb),
	}

	first := ValidateCombination(effects)
	second := ValidateCombination(effects)
	assert.Equal(t, first, second)
}
