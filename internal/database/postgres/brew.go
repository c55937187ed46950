package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/repository"
)

// BrewRepository implements repository.Brew for PostgreSQL
type BrewRepository struct {
	db *pgxpool.Pool
}

// NewBrewRepository creates a new BrewRepository
func NewBrewRepository(db *pgxpool.Pool) repository.Brew {
	return &BrewRepository{db: db}
}

// GetIngredientLedger returns a character's ingredient rows. Zero-quantity
// rows never exist; they are deleted on consumption.
func (r *BrewRepository) GetIngredientLedger(ctx context.Context, characterID string) ([]domain.IngredientStock, error) {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, quantity
		FROM character_ingredients
		WHERE character_id = $1
		ORDER BY ingredient_id`, charID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredient ledger: %w", err)
	}
	defer rows.Close()

	var ledger []domain.IngredientStock
	for rows.Next() {
		var stock domain.IngredientStock
		if err := rows.Scan(&stock.IngredientID, &stock.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient row: %w", err)
		}
		ledger = append(ledger, stock)
	}
	return ledger, rows.Err()
}

// GetArtifacts returns a character's crafted artifacts, newest first.
func (r *BrewRepository) GetArtifacts(ctx context.Context, characterID string) ([]domain.CraftedArtifact, error) {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT artifact_id, character_id, category, effect_names, description, choices, quantity, created_at
		FROM crafted_artifacts
		WHERE character_id = $1
		ORDER BY created_at DESC`, charID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []domain.CraftedArtifact
	for rows.Next() {
		var a domain.CraftedArtifact
		var choicesJSON []byte
		if err := rows.Scan(&a.ID, &a.CharacterID, &a.Category, &a.EffectNames, &a.Description, &choicesJSON, &a.Quantity, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact row: %w", err)
		}
		if len(choicesJSON) > 0 {
			if err := json.Unmarshal(choicesJSON, &a.Choices); err != nil {
				return nil, fmt.Errorf("failed to decode artifact choices: %w", err)
			}
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

// BeginTx starts the commit transaction
func (r *BrewRepository) BeginTx(ctx context.Context) (repository.BrewTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &BrewTx{tx: tx}, nil
}

// BrewTx implements repository.BrewTx over a single pgx transaction
type BrewTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *BrewTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *BrewTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ConsumeIngredients decrements the ledger with one conditional UPDATE per
// removal. The quantity guard in the WHERE clause makes the sufficiency
// check and the deduction a single storage operation, so concurrent commits
// against the same rows cannot interleave a stale read. Any shortfall fails
// the whole transaction.
func (t *BrewTx) ConsumeIngredients(ctx context.Context, characterID string, removals []domain.IngredientRemoval) error {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}

	for _, removal := range removals {
		tag, err := t.tx.Exec(ctx, `
			UPDATE character_ingredients
			SET quantity = quantity - $3
			WHERE character_id = $1 AND ingredient_id = $2 AND quantity >= $3`,
			charID, removal.IngredientID, removal.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement ingredient %d: %w", removal.IngredientID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: ingredient %d", domain.ErrInsufficientIngredients, removal.IngredientID)
		}
	}

	// Ledger invariant: rows that reach zero are deleted, not retained
	if _, err := t.tx.Exec(ctx, `
		DELETE FROM character_ingredients
		WHERE character_id = $1 AND quantity = 0`, charID); err != nil {
		return fmt.Errorf("failed to prune empty ledger rows: %w", err)
	}
	return nil
}

// CreateArtifact inserts the crafted-artifact row produced by a commit with
// at least one successful trial.
func (t *BrewTx) CreateArtifact(ctx context.Context, artifact *domain.CraftedArtifact) error {
	charID, err := parseCharacterUUID(artifact.CharacterID)
	if err != nil {
		return err
	}

	choicesJSON, err := json.Marshal(artifact.Choices)
	if err != nil {
		return fmt.Errorf("failed to encode artifact choices: %w", err)
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO crafted_artifacts (artifact_id, character_id, category, effect_names, description, choices, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		artifact.ID, charID, artifact.Category, artifact.EffectNames, artifact.Description, choicesJSON, artifact.Quantity)
	if err != nil {
		return fmt.Errorf("failed to insert crafted artifact: %w", err)
	}
	return nil
}
