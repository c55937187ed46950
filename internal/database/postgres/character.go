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

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) repository.Character {
	return &CharacterRepository{db: db}
}

// CreateCharacter inserts a new character sheet
func (r *CharacterRepository) CreateCharacter(ctx context.Context, character *domain.Character) error {
	charID, err := parseCharacterUUID(character.ID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO characters (character_id, name, class, level)
		VALUES ($1, $2, $3, $4)`,
		charID, character.Name, character.Class, character.Level)
	if err != nil {
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

// GetCharacter retrieves a character with its equipment slots
func (r *CharacterRepository) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	charID, err := parseCharacterUUID(id)
	if err != nil {
		return nil, err
	}

	var c domain.Character
	err = r.db.QueryRow(ctx, `
		SELECT character_id, name, class, level, created_at
		FROM characters WHERE character_id = $1`, charID).
		Scan(&c.ID, &c.Name, &c.Class, &c.Level, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT slot, item_name FROM character_equipment WHERE character_id = $1`, charID)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	defer rows.Close()

	c.Equipment = make(map[domain.EquipmentSlot]string)
	for rows.Next() {
		var slot domain.EquipmentSlot
		var item string
		if err := rows.Scan(&slot, &item); err != nil {
			return nil, fmt.Errorf("failed to scan equipment row: %w", err)
		}
		c.Equipment[slot] = item
	}
	return &c, rows.Err()
}

// ListCharacters returns all characters without equipment detail
func (r *CharacterRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, `
		SELECT character_id, name, class, level, created_at
		FROM characters ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	var characters []domain.Character
	for rows.Next() {
		var c domain.Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Class, &c.Level, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan character row: %w", err)
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

// SetEquipment assigns an item to a slot, replacing any previous assignment
func (r *CharacterRepository) SetEquipment(ctx context.Context, characterID string, slot domain.EquipmentSlot, itemName string) error {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO character_equipment (character_id, slot, item_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, slot) DO UPDATE SET item_name = EXCLUDED.item_name`,
		charID, slot, itemName)
	if err != nil {
		return fmt.Errorf("failed to set equipment: %w", err)
	}
	return nil
}

// GrantIngredient adds quantity units of an ingredient to the ledger
func (r *CharacterRepository) GrantIngredient(ctx context.Context, characterID string, ingredientID, quantity int) error {
	charID, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: grant quantity must be positive", domain.ErrInvalidInput)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO character_ingredients (character_id, ingredient_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, ingredient_id) DO UPDATE
		SET quantity = character_ingredients.quantity + EXCLUDED.quantity`,
		charID, ingredientID, quantity)
	if err != nil {
		return fmt.Errorf("failed to grant ingredient: %w", err)
	}
	return nil
}
