package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/feybrew/cauldron/internal/brewing"
	"github.com/feybrew/cauldron/internal/character"
	"github.com/feybrew/cauldron/internal/discord"
	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/logger"
)

// IngredientPayload is one selected ingredient instance with the elements it
// contributes to the pool
type IngredientPayload struct {
	IngredientID int      `json:"ingredient_id" validate:"required"`
	Name         string   `json:"name" validate:"required,max=100"`
	Elements     []string `json:"elements" validate:"required,min=1,dive,element"`
}

// PairPayload is one player-formed element pair
type PairPayload struct {
	First  string `json:"first" validate:"required,element"`
	Second string `json:"second" validate:"required,element"`
}

// BrewPreviewRequest represents an in-progress attempt to evaluate statelessly
type BrewPreviewRequest struct {
	CharacterID string              `json:"character_id" validate:"omitempty,uuid4"`
	Ingredients []IngredientPayload `json:"ingredients" validate:"required,min=1,dive"`
	Pairs       []PairPayload       `json:"pairs" validate:"dive"`
	Choices     map[string]string   `json:"choices"`
}

// BrewRequest represents a finalized attempt to commit
type BrewRequest struct {
	CharacterID string              `json:"character_id" validate:"required,uuid4"`
	Ingredients []IngredientPayload `json:"ingredients" validate:"required,min=1,dive"`
	Pairs       []PairPayload       `json:"pairs" validate:"required,min=1,dive"`
	Choices     map[string]string   `json:"choices"`
	BatchSize   int                 `json:"batch_size" validate:"omitempty,min=1,max=20"`
	Modifier    int                 `json:"modifier"`
	Seed        *int64              `json:"seed"`
}

// BrewHandler handles brewing HTTP requests
type BrewHandler struct {
	brewingSvc   brewing.Service
	characterSvc character.Service
	announcer    *discord.Announcer
}

// NewBrewHandler creates a new brew handler. announcer may be nil.
func NewBrewHandler(brewingSvc brewing.Service, characterSvc character.Service, announcer *discord.Announcer) *BrewHandler {
	return &BrewHandler{
		brewingSvc:   brewingSvc,
		characterSvc: characterSvc,
		announcer:    announcer,
	}
}

// HandlePreview evaluates an in-progress attempt without committing anything
// @Summary Preview a brewing attempt
// @Description Builds the element pool, applies pairs, resolves effects and reports validation and outstanding choices
// @Tags brewing
// @Accept json
// @Produce json
// @Param request body BrewPreviewRequest true "Preview request"
// @Success 200 {object} brewing.PreviewResult "Preview result"
// @Failure 400 {object} ErrorResponse "Invalid request or impossible pair"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /brew/preview [post]
func (h *BrewHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req BrewPreviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Brew preview"); err != nil {
		return
	}

	result, err := h.brewingSvc.Preview(r.Context(), brewing.PreviewRequest{
		CharacterID: req.CharacterID,
		Ingredients: toDomainIngredients(req.Ingredients),
		Pairs:       toDomainPairs(req.Pairs),
		Choices:     req.Choices,
	})
	if err != nil {
		respondServiceError(w, r, "Brew preview", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleBrew commits a finalized attempt
// @Summary Brew a batch
// @Description Rolls the batch outcomes and atomically consumes ingredients, creating the crafted artifact when any trial succeeds
// @Tags brewing
// @Accept json
// @Produce json
// @Param request body BrewRequest true "Brew request"
// @Success 200 {object} brewing.BrewResult "Brew committed"
// @Failure 400 {object} ErrorResponse "Invalid combination or unresolved choices"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Failure 409 {object} ErrorResponse "Insufficient ingredients"
// @Failure 503 {object} ErrorResponse "Commit failed, retryable"
// @Router /brew [post]
func (h *BrewHandler) HandleBrew(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req BrewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Brew"); err != nil {
		return
	}

	log.Info("Brew request received",
		"character", req.CharacterID,
		"ingredients", len(req.Ingredients),
		"pairs", len(req.Pairs),
		"batch_size", req.BatchSize)

	char, err := h.characterSvc.GetCharacter(r.Context(), req.CharacterID)
	if err != nil {
		respondServiceError(w, r, "Brew", err)
		return
	}

	result, err := h.brewingSvc.Brew(r.Context(), brewing.BrewRequest{
		CharacterID: req.CharacterID,
		Ingredients: toDomainIngredients(req.Ingredients),
		Pairs:       toDomainPairs(req.Pairs),
		Choices:     req.Choices,
		BatchSize:   req.BatchSize,
		Modifier:    req.Modifier,
		Seed:        req.Seed,
	})
	if err != nil {
		log.Error("Brew failed", "error", err, "character", req.CharacterID)

		if isCommitFailure(err) {
			respondError(w, http.StatusServiceUnavailable, ErrMsgCommitRetryableError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Brew committed",
		"character", req.CharacterID,
		"category", result.Category,
		"successes", result.Batch.SuccessCount)

	h.announcer.AnnounceBrew(r.Context(), char.Name, result)

	respondJSON(w, http.StatusOK, result)
}

// isCommitFailure reports whether the brew failed at the persistence boundary
// with the attempt itself intact. An insufficient ledger is a definitive
// rejection, not a transient one.
func isCommitFailure(err error) bool {
	if errors.Is(err, domain.ErrInsufficientIngredients) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, brewing.ErrContextFailedToBeginTx) ||
		strings.Contains(msg, brewing.ErrContextFailedToConsume) ||
		strings.Contains(msg, brewing.ErrContextFailedToCreateArtifact) ||
		strings.Contains(msg, brewing.ErrContextFailedToCommitTx)
}

func toDomainIngredients(payloads []IngredientPayload) []domain.IngredientInstance {
	out := make([]domain.IngredientInstance, 0, len(payloads))
	for _, p := range payloads {
		elements := make([]domain.Element, 0, len(p.Elements))
		for _, e := range p.Elements {
			elements = append(elements, domain.Element(strings.ToLower(e)))
		}
		out = append(out, domain.IngredientInstance{
			IngredientID: p.IngredientID,
			Name:         p.Name,
			Elements:     elements,
		})
	}
	return out
}

func toDomainPairs(payloads []PairPayload) []domain.ElementPair {
	out := make([]domain.ElementPair, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, domain.ElementPair{
			First:  domain.Element(strings.ToLower(p.First)),
			Second: domain.Element(strings.ToLower(p.Second)),
		})
	}
	return out
}
