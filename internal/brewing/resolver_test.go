package brewing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feybrew/cauldron/internal/domain"
)

func testRecipes() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Name: "Healing Draught", ElementA: domain.ElementWater, ElementB: domain.ElementPositive, Category: domain.CategoryElixir, Template: "Restores {n*2} vigor to {target:ally|self}."},
		{ID: 2, Name: "Blast Powder", ElementA: domain.ElementFire, ElementB: domain.ElementEarth, Category: domain.CategoryBomb, Template: "Deals {n} damage at {point}."},
		{ID: 3, Name: "Flame Oil", ElementA: domain.ElementFire, ElementB: domain.ElementPositive, Category: domain.CategoryOil, Template: "Coated weapon burns for {n+1} rounds."},
		{ID: 4, Name: "Wildfire Charge", ElementA: domain.ElementFire, ElementB: domain.ElementFire, Category: domain.CategoryBomb, Template: ""},
	}
}

func TestResolveRecipe(t *testing.T) {
	recipes := testRecipes()

	tests := []struct {
		name     string
		a, b     domain.Element
		expected string
	}{
		{name: "Match in declared order", a: domain.ElementWater, b: domain.ElementPositive, expected: "Healing Draught"},
		{name: "Match in reversed order", a: domain.ElementPositive, b: domain.ElementWater, expected: "Healing Draught"},
		{name: "Same element pair", a: domain.ElementFire, b: domain.ElementFire, expected: "Wildfire Charge"},
		{name: "No match", a: domain.ElementAir, b: domain.ElementNegative, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := ResolveRecipe(recipes, tt.a, tt.b)
			if tt.expected == "" {
				assert.Nil(t, recipe)
				return
			}
			require.NotNil(t, recipe)
			assert.Equal(t, tt.expected, recipe.Name)
		})
	}
}

func TestRecipeIndex_MatchesLinearScan(t *testing.T) {
	recipes := testRecipes()
	idx := NewRecipeIndex(recipes)

	for _, a := range []domain.Element{domain.ElementFire, domain.ElementWater, domain.ElementEarth, domain.ElementAir, domain.ElementPositive, domain.ElementNegative} {
		for _, b := range []domain.Element{domain.ElementFire, domain.ElementWater, domain.ElementEarth, domain.ElementAir, domain.ElementPositive, domain.ElementNegative} {
			assert.Equal(t, ResolveRecipe(recipes, a, b), idx.Resolve(a, b), "pair %s+%s", a, b)
		}
	}
}

func TestRecipeIndex_DuplicatePairFirstWins(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: 1, Name: "First Claim", ElementA: domain.ElementFire, ElementB: domain.ElementWater, Category: domain.CategoryElixir},
		{ID: 2, Name: "Second Claim", ElementA: domain.ElementWater, ElementB: domain.ElementFire, Category: domain.CategoryBomb},
	}

	idx := NewRecipeIndex(recipes)
	resolved := idx.Resolve(domain.ElementWater, domain.ElementFire)
	require.NotNil(t, resolved)
	assert.Equal(t, "First Claim", resolved.Name)
}

func TestAggregateEffects(t *testing.T) {
	recipes := testRecipes()

	tests := []struct {
		name     string
		pairs    []domain.ElementPair
		expected []struct {
			recipeName string
			potency    int
		}
	}{
		{
			name:     "No pairs",
			pairs:    nil,
			expected: nil,
		},
		{
			name: "Distinct recipes keep resolution order",
			pairs: []domain.ElementPair{
				{First: domain.ElementFire, Second: domain.ElementEarth},
				{First: domain.ElementWater, Second: domain.ElementPositive},
			},
			expected: []struct {
				recipeName string
				potency    int
			}{
				{"Blast Powder", 1},
				{"Healing Draught", 1},
			},
		},
		{
			name: "Repeated recipe folds into potency",
			pairs: []domain.ElementPair{
				{First: domain.ElementWater, Second: domain.ElementPositive},
				{First: domain.ElementFire, Second: domain.ElementEarth},
				{First: domain.ElementPositive, Second: domain.ElementWater},
			},
			expected: []struct {
				recipeName string
				potency    int
			}{
				{"Healing Draught", 2},
				{"Blast Powder", 1},
			},
		},
		{
			name: "Non-matching pairs are dropped",
			pairs: []domain.ElementPair{
				{First: domain.ElementAir, Second: domain.ElementNegative},
				{First: domain.ElementFire, Second: domain.ElementFire},
			},
			expected: []struct {
				recipeName string
				potency    int
			}{
				{"Wildfire Charge", 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effects := AggregateEffects(recipes, tt.pairs)
			require.Len(t, effects, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.recipeName, effects[i].Recipe.Name)
				assert.Equal(t, want.potency, effects[i].Potency)
			}
		})
	}
}
