package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feybrew/cauldron/internal/domain"
)

// mockRecipeRepo is an in-memory recipe store with unlock tracking
type mockRecipeRepo struct {
	recipes []domain.Recipe
	unlocks map[string]map[int]bool

	unlockedIDCalls int
}

func newMockRecipeRepo(recipes []domain.Recipe) *mockRecipeRepo {
	return &mockRecipeRepo{
		recipes: recipes,
		unlocks: make(map[string]map[int]bool),
	}
}

func (m *mockRecipeRepo) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return m.recipes, nil
}

func (m *mockRecipeRepo) GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error) {
	for i := range m.recipes {
		if m.recipes[i].Name == name {
			return &m.recipes[i], nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (m *mockRecipeRepo) GetRecipeByUnlockCode(ctx context.Context, code string) (*domain.Recipe, error) {
	for i := range m.recipes {
		if m.recipes[i].Secret && m.recipes[i].UnlockCode == code {
			return &m.recipes[i], nil
		}
	}
	return nil, domain.ErrInvalidUnlockCode
}

func (m *mockRecipeRepo) GetUnlockedRecipeIDs(ctx context.Context, characterID string) ([]int, error) {
	m.unlockedIDCalls++
	var ids []int
	for id := range m.unlocks[characterID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockRecipeRepo) UnlockRecipe(ctx context.Context, characterID string, recipeID int) error {
	if m.unlocks[characterID] == nil {
		m.unlocks[characterID] = make(map[int]bool)
	}
	m.unlocks[characterID][recipeID] = true
	return nil
}

func catalogFixture() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Name: "Healing Draught", Category: domain.CategoryElixir},
		{ID: 2, Name: "Blast Powder", Category: domain.CategoryBomb},
		{ID: 3, Name: "Midnight Tonic", Category: domain.CategoryElixir, Secret: true, UnlockCode: "ASHES-OF-AUTUMN"},
	}
}

func TestVisibleRecipes(t *testing.T) {
	repo := newMockRecipeRepo(catalogFixture())
	svc := NewService(repo)

	t.Run("Secret recipes hidden by default", func(t *testing.T) {
		visible, err := svc.VisibleRecipes(context.Background(), "char-1")
		require.NoError(t, err)

		require.Len(t, visible, 2)
		assert.Equal(t, "Healing Draught", visible[0].Name)
		assert.Equal(t, "Blast Powder", visible[1].Name)
	})

	t.Run("Anonymous caller sees public catalog", func(t *testing.T) {
		visible, err := svc.VisibleRecipes(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, visible, 2)
	})
}

func TestRedeemUnlockCode(t *testing.T) {
	repo := newMockRecipeRepo(catalogFixture())
	svc := NewService(repo)

	unlocked, err := svc.RedeemUnlockCode(context.Background(), "char-1", "ASHES-OF-AUTUMN")
	require.NoError(t, err)
	assert.Equal(t, "Midnight Tonic", unlocked.Name)

	// The unlocked secret recipe appears, in table order
	visible, err := svc.VisibleRecipes(context.Background(), "char-1")
	require.NoError(t, err)
	require.Len(t, visible, 3)
	assert.Equal(t, "Midnight Tonic", visible[2].Name)

	// Other characters are unaffected
	visible, err = svc.VisibleRecipes(context.Background(), "char-2")
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestRedeemUnlockCode_InvalidCode(t *testing.T) {
	repo := newMockRecipeRepo(catalogFixture())
	svc := NewService(repo)

	_, err := svc.RedeemUnlockCode(context.Background(), "char-1", "WRONG-CODE")
	assert.ErrorIs(t, err, domain.ErrInvalidUnlockCode)
}

func TestRedeemUnlockCode_Idempotent(t *testing.T) {
	repo := newMockRecipeRepo(catalogFixture())
	svc := NewService(repo)

	_, err := svc.RedeemUnlockCode(context.Background(), "char-1", "ASHES-OF-AUTUMN")
	require.NoError(t, err)
	_, err = svc.RedeemUnlockCode(context.Background(), "char-1", "ASHES-OF-AUTUMN")
	require.NoError(t, err)

	visible, err := svc.VisibleRecipes(context.Background(), "char-1")
	require.NoError(t, err)
	assert.Len(t, visible, 3)
}

func TestVisibleRecipes_UnlockSetCached(t *testing.T) {
	repo := newMockRecipeRepo(catalogFixture())
	svc := NewService(repo)

	_, err := svc.VisibleRecipes(context.Background(), "char-1")
	require.NoError(t, err)
	_, err = svc.VisibleRecipes(context.Background(), "char-1")
	require.NoError(t, err)

	// Second call served from cache
	assert.Equal(t, 1, repo.unlockedIDCalls)

	// Redemption invalidates the cached set
	_, err = svc.RedeemUnlockCode(context.Background(), "char-1", "ASHES-OF-AUTUMN")
	require.NoError(t, err)
	_, err = svc.VisibleRecipes(context.Background(), "char-1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.unlockedIDCalls)
}
