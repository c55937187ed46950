package repository

import (
	"context"

	"github.com/feybrew/cauldron/internal/domain"
)

// Recipe defines the interface for recipe catalog persistence. The catalog
// is read-only to the brewing engine; unlocks are the only writes.
type Recipe interface {
	GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error)
	GetRecipeByUnlockCode(ctx context.Context, code string) (*domain.Recipe, error)
	GetUnlockedRecipeIDs(ctx context.Context, characterID string) ([]int, error)
	UnlockRecipe(ctx context.Context, characterID string, recipeID int) error
}
