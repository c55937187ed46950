package repository

import (
	"context"

	"github.com/feybrew/cauldron/internal/domain"
)

// Character defines the interface for character-sheet persistence
type Character interface {
	CreateCharacter(ctx context.Context, character *domain.Character) error
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	SetEquipment(ctx context.Context, characterID string, slot domain.EquipmentSlot, itemName string) error
	GrantIngredient(ctx context.Context, characterID string, ingredientID, quantity int) error
}
