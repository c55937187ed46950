package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/logger"
	"github.com/feybrew/cauldron/internal/metrics"
	"github.com/feybrew/cauldron/internal/repository"
)

const (
	unlockCacheSize = 512
	unlockCacheTTL  = 5 * time.Minute
)

// Service defines the interface for recipe catalog operations
type Service interface {
	// VisibleRecipes returns the catalog as one character sees it: every
	// public recipe plus the secret ones they have unlocked, in table order.
	VisibleRecipes(ctx context.Context, characterID string) ([]domain.Recipe, error)
	RedeemUnlockCode(ctx context.Context, characterID, code string) (*domain.Recipe, error)
}

type service struct {
	repo repository.Recipe

	// unlocked-recipe sets are read on every brew preview; cached per
	// character with a short TTL and invalidated on redemption
	unlockCache *expirable.LRU[string, map[int]bool]
}

// NewService creates a new recipe catalog service
func NewService(repo repository.Recipe) Service {
	return &service{
		repo:        repo,
		unlockCache: expirable.NewLRU[string, map[int]bool](unlockCacheSize, nil, unlockCacheTTL),
	}
}

func (s *service) VisibleRecipes(ctx context.Context, characterID string) ([]domain.Recipe, error) {
	all, err := s.repo.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	unlocked, err := s.unlockedSet(ctx, characterID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Recipe, 0, len(all))
	for _, r := range all {
		if r.Secret && !unlocked[r.ID] {
			continue
		}
		visible = append(visible, r)
	}
	return visible, nil
}

// RedeemUnlockCode unlocks the secret recipe matching code for the
// character. Redeeming an already-unlocked code succeeds idempotently.
func (s *service) RedeemUnlockCode(ctx context.Context, characterID, code string) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.repo.GetRecipeByUnlockCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UnlockRecipe(ctx, characterID, recipe.ID); err != nil {
		return nil, fmt.Errorf("failed to unlock recipe: %w", err)
	}
	s.unlockCache.Remove(characterID)
	metrics.RecipeUnlocks.Inc()

	log.Info("Recipe unlocked", "character", characterID, "recipe", recipe.Name)
	return recipe, nil
}

func (s *service) unlockedSet(ctx context.Context, characterID string) (map[int]bool, error) {
	if characterID == "" {
		return map[int]bool{}, nil
	}
	if cached, ok := s.unlockCache.Get(characterID); ok {
		return cached, nil
	}

	ids, err := s.repo.GetUnlockedRecipeIDs(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe unlocks: %w", err)
	}

	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	s.unlockCache.Add(characterID, set)
	return set, nil
}
