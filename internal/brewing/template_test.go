package brewing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feybrew/cauldron/internal/domain"
)

func TestExtractChoices(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected []TemplateVar
	}{
		{
			name:     "No variables",
			template: "A plain description.",
			expected: nil,
		},
		{
			name:     "Potency placeholders are not choices",
			template: "Deals {n} damage, then {n*2} more over {n+3} rounds.",
			expected: nil,
		},
		{
			name:     "Free text variable",
			template: "Explodes at {point}.",
			expected: []TemplateVar{{Name: "point", Kind: VarFreeText}},
		},
		{
			name:     "Enumerated variable",
			template: "Deals {n*2} damage to {target:ally|self}",
			expected: []TemplateVar{{Name: "target", Kind: VarEnumChoice, Options: []string{"ally", "self"}}},
		},
		{
			name:     "Mixed variables in appearance order",
			template: "Hits {foe} for {n} and marks {target:ally|self|foe}.",
			expected: []TemplateVar{
				{Name: "foe", Kind: VarFreeText},
				{Name: "target", Kind: VarEnumChoice, Options: []string{"ally", "self", "foe"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractChoices(tt.template))
		})
	}
}

func TestDeclaredChoices_DeduplicatesAcrossEffects(t *testing.T) {
	effects := []domain.PairedEffect{
		{Recipe: domain.Recipe{Name: "A", Template: "Aim at {target:ally|self}."}, Potency: 1},
		{Recipe: domain.Recipe{Name: "B", Template: "Also affects {target:foe} and {point}."}, Potency: 1},
	}

	vars := DeclaredChoices(effects)
	require.Len(t, vars, 2)

	// First declaration of target wins, including its option set
	assert.Equal(t, "target", vars[0].Name)
	assert.Equal(t, []string{"ally", "self"}, vars[0].Options)
	assert.Equal(t, "point", vars[1].Name)
	assert.Equal(t, VarFreeText, vars[1].Kind)
}

func TestUnresolvedChoices(t *testing.T) {
	effects := []domain.PairedEffect{
		{Recipe: domain.Recipe{Name: "A", Template: "Aim at {target:ally|self} near {point}."}, Potency: 1},
	}

	assert.Equal(t, []string{"target", "point"}, UnresolvedChoices(effects, nil))
	assert.Equal(t, []string{"point"}, UnresolvedChoices(effects, map[string]string{"target": "self"}))
	assert.Empty(t, UnresolvedChoices(effects, map[string]string{"target": "self", "point": "the gate"}))
}

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		potency  int
		choices  map[string]string
		expected string
	}{
		{
			name:     "Plain potency",
			template: "Deals {n} damage.",
			potency:  3,
			expected: "Deals 3 damage.",
		},
		{
			name:     "Scaled and offset potency with enum choice",
			template: "Deals {n*2} damage to {target:ally|self}",
			potency:  3,
			choices:  map[string]string{"target": "self"},
			expected: "Deals 6 damage to self",
		},
		{
			name:     "Additive potency",
			template: "Burns for {n+1} rounds.",
			potency:  2,
			expected: "Burns for 3 rounds.",
		},
		{
			name:     "Free text substitution",
			template: "Explodes at {point}.",
			potency:  1,
			choices:  map[string]string{"point": "the drawbridge"},
			expected: "Explodes at the drawbridge.",
		},
		{
			name:     "Unresolved span left untouched",
			template: "Aim at {target:ally|self}.",
			potency:  1,
			expected: "Aim at {target:ally|self}.",
		},
		{
			name:     "Overflowing factor left untouched",
			template: "Deals {n*99999999999999999999} damage.",
			potency:  3,
			expected: "Deals {n*99999999999999999999} damage.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FillTemplate(tt.template, tt.potency, tt.choices))
		})
	}
}

func TestBuildDescription(t *testing.T) {
	effects := []domain.PairedEffect{
		{Recipe: domain.Recipe{Name: "Healing Draught", Template: "Restores {n*2} vigor to {target:ally|self}."}, Potency: 2},
		{Recipe: domain.Recipe{Name: "Gravebane Salve", Template: ""}, Potency: 1},
		{Recipe: domain.Recipe{Name: "Wildfire Charge", Template: ""}, Potency: 3},
	}
	choices := map[string]string{"target": "ally"}

	desc := BuildDescription(effects, choices)
	assert.Equal(t, "Restores 4 vigor to ally. Gravebane Salve Wildfire Charge (x3)", desc)
}

func TestExpandEffectNames(t *testing.T) {
	effects := []domain.PairedEffect{
		{Recipe: domain.Recipe{Name: "Healing Draught"}, Potency: 2},
		{Recipe: domain.Recipe{Name: "Blast Powder"}, Potency: 1},
	}

	names := ExpandEffectNames(effects)
	assert.Equal(t, []string{"Healing Draught", "Healing Draught", "Blast Powder"}, names)
}
