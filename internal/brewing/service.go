package brewing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/logger"
	"github.com/feybrew/cauldron/internal/metrics"
	"github.com/feybrew/cauldron/internal/repository"
)

// Repository defines the data access required by the brewing service
type Repository interface {
	BeginTx(ctx context.Context) (repository.BrewTx, error)
}

// Catalog provides the recipes visible to a character (secret recipes only
// after unlocking). Read-only collaborator.
type Catalog interface {
	VisibleRecipes(ctx context.Context, characterID string) ([]domain.Recipe, error)
}

// PreviewRequest carries a player's in-progress attempt for stateless
// evaluation.
type PreviewRequest struct {
	CharacterID string
	Ingredients []domain.IngredientInstance
	Pairs       []domain.ElementPair
	Choices     map[string]string
}

// PreviewResult reports everything the UI needs between pairing changes.
type PreviewResult struct {
	Pool        domain.ElementPool     `json:"pool"`
	Remaining   map[domain.Element]int `json:"remaining"`
	Effects     []domain.PairedEffect  `json:"effects"`
	Validation  CombinationResult      `json:"validation"`
	Choices     []TemplateVar          `json:"choices"`
	Description string                 `json:"description,omitempty"`
}

// BrewRequest is a finalized attempt plus outcome parameters.
type BrewRequest struct {
	CharacterID string
	Ingredients []domain.IngredientInstance
	Pairs       []domain.ElementPair
	Choices     map[string]string
	BatchSize   int
	Modifier    int
	Seed        *int64
}

// BrewResult is the full record of one committed brew.
type BrewResult struct {
	Seed        int64                   `json:"seed"`
	Batch       domain.BatchResult      `json:"batch"`
	Category    domain.Category         `json:"category"`
	EffectNames []string                `json:"effect_names"`
	Description string                  `json:"description"`
	Artifact    *domain.CraftedArtifact `json:"artifact,omitempty"`
}

// Service defines the interface for brewing operations
type Service interface {
	Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error)
	Brew(ctx context.Context, req BrewRequest) (*BrewResult, error)
	CommitCraft(ctx context.Context, payload CommitPayload, successCount int) (*domain.CraftedArtifact, error)
}

type service struct {
	repo      Repository
	catalog   Catalog
	roller    Roller
	threshold int
}

// NewService creates a new brewing service. roller may be nil, in which case
// each brew seeds its own from NewSeed (or the request seed).
func NewService(repo Repository, catalog Catalog, roller Roller) Service {
	return &service{
		repo:      repo,
		catalog:   catalog,
		roller:    roller,
		threshold: DefaultThreshold,
	}
}

// Preview evaluates an in-progress attempt without touching any state: pool,
// remaining elements, resolved effects, validation verdict, declared choices
// and a best-effort filled description.
func (s *service) Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	recipes, err := s.catalog.VisibleRecipes(ctx, req.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	pool := BuildElementPool(req.Ingredients)
	pairing := NewPairing(pool)
	for _, pair := range req.Pairs {
		if err := pairing.AddPair(pair.First, pair.Second); err != nil {
			return nil, err
		}
	}

	effects := AggregateEffects(recipes, pairing.Pairs())
	validation := ValidateCombination(effects)

	remaining := make(map[domain.Element]int)
	for e, n := range pairing.Remaining() {
		remaining[e] = n
	}

	result := &PreviewResult{
		Pool:       pool,
		Remaining:  remaining,
		Effects:    effects,
		Validation: validation,
		Choices:    DeclaredChoices(effects),
	}
	if validation.Valid {
		result.Description = BuildDescription(effects, req.Choices)
	}
	return result, nil
}

// Brew drives a full attempt through the state machine: selection, pairing,
// resolution, validation, choices, eager outcome trials, then the atomic
// commit. Validation failures never reach the persistence boundary.
func (s *service) Brew(ctx context.Context, req BrewRequest) (*BrewResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBrewCalled, "character", req.CharacterID, "pairs", len(req.Pairs), "batch_size", req.BatchSize)

	recipes, err := s.catalog.VisibleRecipes(ctx, req.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	attempt := NewAttempt(req.CharacterID)
	if err := attempt.SelectIngredients(req.Ingredients); err != nil {
		return nil, err
	}
	pairing, err := attempt.Pairing()
	if err != nil {
		return nil, err
	}
	for _, pair := range req.Pairs {
		if err := pairing.AddPair(pair.First, pair.Second); err != nil {
			return nil, err
		}
	}

	validation, err := attempt.FinalizePairing(recipes)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		if validation.Reason == domain.ErrMsgNoEffects {
			return nil, domain.ErrNoEffects
		}
		return nil, domain.ErrMixedCategories
	}

	for name, value := range req.Choices {
		if err := attempt.SetChoice(name, value); err != nil {
			return nil, err
		}
	}

	payload, err := attempt.BeginCommit()
	if err != nil {
		return nil, err
	}

	seed, err := s.resolveSeed(req.Seed)
	if err != nil {
		return nil, err
	}
	roller := s.roller
	if roller == nil {
		roller = NewRoller(seed)
	}

	batchSize := req.BatchSize
	if batchSize == 0 {
		batchSize = 1
	}
	batch, err := ResolveBatch(roller, req.Modifier, s.threshold, batchSize)
	if err != nil {
		return nil, err
	}

	artifact, err := s.CommitCraft(ctx, *payload, batch.SuccessCount)
	if err != nil {
		// Retryable: the attempt state is preserved by the caller; the same
		// payload commits again without re-deriving pairs or choices.
		return nil, err
	}
	if err := attempt.Settle(); err != nil {
		return nil, err
	}

	return &BrewResult{
		Seed:        seed,
		Batch:       batch,
		Category:    payload.Category,
		EffectNames: payload.EffectNames,
		Description: payload.Description,
		Artifact:    artifact,
	}, nil
}

// CommitCraft is the atomic commit: consume ingredients, create the crafted
// artifact scaled by batch successes. Either both take effect or neither.
// Ingredients are spent whether or not the brew worked; the artifact exists
// only when successCount > 0. An insufficient ledger rejects the whole
// operation with no partial deduction.
func (s *service) CommitCraft(ctx context.Context, payload CommitPayload, successCount int) (*domain.CraftedArtifact, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCommitCraftCalled,
		"character", payload.CharacterID,
		"category", payload.Category,
		"removals", len(payload.Removals),
		"success_count", successCount)

	if len(payload.EffectNames) == 0 {
		return nil, domain.ErrNoEffects
	}
	if successCount < 0 {
		return nil, fmt.Errorf("%w: negative success count", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.ConsumeIngredients(ctx, payload.CharacterID, payload.Removals); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToConsume, err)
	}

	var artifact *domain.CraftedArtifact
	if successCount > 0 {
		artifact = &domain.CraftedArtifact{
			ID:          uuid.NewString(),
			CharacterID: payload.CharacterID,
			Category:    payload.Category,
			EffectNames: payload.EffectNames,
			Description: payload.Description,
			Choices:     payload.Choices,
			Quantity:    successCount,
		}
		if err := tx.CreateArtifact(ctx, artifact); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateArtifact, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	if successCount > 0 {
		metrics.BrewsCommitted.WithLabelValues(string(payload.Category)).Inc()
		metrics.ArtifactsCrafted.WithLabelValues(string(payload.Category)).Add(float64(successCount))
		log.Info(LogMsgCraftCommitted, "character", payload.CharacterID, "quantity", successCount)
	} else {
		metrics.BrewsFailed.WithLabelValues(string(payload.Category)).Inc()
		log.Info(LogMsgBatchFullyFailed, "character", payload.CharacterID)
	}

	return artifact, nil
}

func (s *service) resolveSeed(requested *int64) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	return NewSeed()
}
