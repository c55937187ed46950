package character

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/logger"
	"github.com/feybrew/cauldron/internal/repository"
)

// Service defines the interface for character-sheet operations. Thin
// persistence glue; no game rules live here.
type Service interface {
	CreateCharacter(ctx context.Context, name, class string, level int) (*domain.Character, error)
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	AssignEquipment(ctx context.Context, characterID string, slot domain.EquipmentSlot, itemName string) error
	GrantIngredient(ctx context.Context, characterID string, ingredientID, quantity int) error
	ListIngredients(ctx context.Context, characterID string) ([]domain.IngredientStock, error)
	ListArtifacts(ctx context.Context, characterID string) ([]domain.CraftedArtifact, error)
}

type service struct {
	repo     repository.Character
	brewRepo repository.Brew
}

// NewService creates a new character service
func NewService(repo repository.Character, brewRepo repository.Brew) Service {
	return &service{repo: repo, brewRepo: brewRepo}
}

func (s *service) CreateCharacter(ctx context.Context, name, class string, level int) (*domain.Character, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: character name is required", domain.ErrInvalidInput)
	}
	if level < 1 {
		level = 1
	}

	character := &domain.Character{
		ID:    uuid.NewString(),
		Name:  name,
		Class: class,
		Level: level,
	}
	if err := s.repo.CreateCharacter(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	logger.FromContext(ctx).Info("Character created", "character", character.ID, "name", name)
	return character, nil
}

func (s *service) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	return s.repo.GetCharacter(ctx, id)
}

func (s *service) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	return s.repo.ListCharacters(ctx)
}

// AssignEquipment assigns an item to one of the closed set of slots.
func (s *service) AssignEquipment(ctx context.Context, characterID string, slot domain.EquipmentSlot, itemName string) error {
	if !domain.ValidSlot(slot) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return err
	}
	return s.repo.SetEquipment(ctx, characterID, slot, itemName)
}

func (s *service) GrantIngredient(ctx context.Context, characterID string, ingredientID, quantity int) error {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return err
	}
	return s.repo.GrantIngredient(ctx, characterID, ingredientID, quantity)
}

func (s *service) ListIngredients(ctx context.Context, characterID string) ([]domain.IngredientStock, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	return s.brewRepo.GetIngredientLedger(ctx, characterID)
}

func (s *service) ListArtifacts(ctx context.Context, characterID string) ([]domain.CraftedArtifact, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	return s.brewRepo.GetArtifacts(ctx, characterID)
}
