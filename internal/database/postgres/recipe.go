package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/repository"
)

// RecipeRepository implements repository.Recipe for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) repository.Recipe {
	return &RecipeRepository{db: db}
}

const recipeColumns = `recipe_id, name, element_a, element_b, category, template, secret, unlock_code, created_at`

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var r domain.Recipe
	err := row.Scan(&r.ID, &r.Name, &r.ElementA, &r.ElementB, &r.Category, &r.Template, &r.Secret, &r.UnlockCode, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetAllRecipes returns the full catalog in table order. Table order matters:
// the resolver's first-match semantics depend on it.
func (r *RecipeRepository) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY recipe_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, rows.Err()
}

// GetRecipeByName retrieves a recipe by display name
func (r *RecipeRepository) GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error) {
	recipe, err := scanRecipe(r.db.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipeByUnlockCode retrieves a secret recipe by its redemption code
func (r *RecipeRepository) GetRecipeByUnlockCode(ctx context.Context, code string) (*domain.Recipe, error) {
	recipe, err := scanRecipe(r.db.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE secret AND unlock_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidUnlockCode
		}
		return nil, fmt.Errorf("failed to get recipe by unlock code: %w", err)
	}
	return recipe, nil
}

// GetUnlockedRecipeIDs returns the ids of secret recipes the character has
// unlocked.
func (r *RecipeRepository) GetUnlockedRecipeIDs(ctx context.Context, characterID string) ([]int, error) {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT recipe_id FROM recipe_unlocks WHERE character_id = $1`, charID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe unlocks: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan unlock row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UnlockRecipe records an unlock. Redeeming the same code twice is a no-op.
func (r *RecipeRepository) UnlockRecipe(ctx context.Context, characterID string, recipeID int) error {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO recipe_unlocks (character_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT (character_id, recipe_id) DO NOTHING`, charID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to record recipe unlock: %w", err)
	}
	return nil
}
