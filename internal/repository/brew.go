package repository

import (
	"context"

	"github.com/feybrew/cauldron/internal/domain"
)

// Brew defines the persistence contract the brewing engine requires: the
// ingredient ledger plus the artifact ledger, with a transaction spanning
// both so consume-and-produce is all-or-nothing.
type Brew interface {
	GetIngredientLedger(ctx context.Context, characterID string) ([]domain.IngredientStock, error)
	GetArtifacts(ctx context.Context, characterID string) ([]domain.CraftedArtifact, error)
	// BeginTx starts the commit transaction
	BeginTx(ctx context.Context) (BrewTx, error)
}

// BrewTx is the atomic commit boundary. ConsumeIngredients must check
// sufficiency and decrement in one storage-level operation per removal (no
// separate read-then-write round trips) and return
// domain.ErrInsufficientIngredients when the ledger cannot satisfy the list.
type BrewTx interface {
	Tx
	ConsumeIngredients(ctx context.Context, characterID string, removals []domain.IngredientRemoval) error
	CreateArtifact(ctx context.Context, artifact *domain.CraftedArtifact) error
}
