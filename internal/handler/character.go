package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feybrew/cauldron/internal/character"
	"github.com/feybrew/cauldron/internal/domain"
	"github.com/feybrew/cauldron/internal/logger"
)

// CreateCharacterRequest represents the request to create a character sheet
type CreateCharacterRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Class string `json:"class" validate:"max=50"`
	Level int    `json:"level" validate:"omitempty,min=1,max=20"`
}

// SetEquipmentRequest represents the request to assign an item to a slot
type SetEquipmentRequest struct {
	Slot     string `json:"slot" validate:"required,slot"`
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// GrantIngredientRequest represents the request to add ingredients to a ledger
type GrantIngredientRequest struct {
	IngredientID int `json:"ingredient_id" validate:"required"`
	Quantity     int `json:"quantity" validate:"required,min=1"`
}

// CharacterHandler handles character sheet HTTP requests
type CharacterHandler struct {
	characterSvc character.Service
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(characterSvc character.Service) *CharacterHandler {
	return &CharacterHandler{characterSvc: characterSvc}
}

// HandleCreateCharacter creates a new character sheet
// @Summary Create a character
// @Tags characters
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character to create"
// @Success 201 {object} domain.Character "Created character"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /characters [post]
func (h *CharacterHandler) HandleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
		return
	}

	created, err := h.characterSvc.CreateCharacter(r.Context(), req.Name, req.Class, req.Level)
	if err != nil {
		respondServiceError(w, r, "Create character", err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleGetCharacter returns one character with equipment
// @Summary Get a character
// @Tags characters
// @Produce json
// @Param characterID path string true "Character ID"
// @Success 200 {object} domain.Character "Character"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Router /characters/{characterID} [get]
func (h *CharacterHandler) HandleGetCharacter(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	char, err := h.characterSvc.GetCharacter(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, "Get character", err)
		return
	}

	respondJSON(w, http.StatusOK, char)
}

// HandleListCharacters returns all characters
// @Summary List characters
// @Tags characters
// @Produce json
// @Success 200 {object} DataResponse "Characters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /characters [get]
func (h *CharacterHandler) HandleListCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characterSvc.ListCharacters(r.Context())
	if err != nil {
		respondServiceError(w, r, "List characters", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: characters})
}

// HandleSetEquipment assigns an item to an equipment slot
// @Summary Assign equipment
// @Tags characters
// @Accept json
// @Produce json
// @Param characterID path string true "Character ID"
// @Param request body SetEquipmentRequest true "Slot assignment"
// @Success 200 {object} SuccessResponse "Equipment assigned"
// @Failure 400 {object} ErrorResponse "Invalid slot"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Router /characters/{characterID}/equipment [put]
func (h *CharacterHandler) HandleSetEquipment(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	var req SetEquipmentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set equipment"); err != nil {
		return
	}

	err := h.characterSvc.AssignEquipment(r.Context(), characterID, domain.EquipmentSlot(req.Slot), req.ItemName)
	if err != nil {
		respondServiceError(w, r, "Set equipment", err)
		return
	}

	logger.FromContext(r.Context()).Info("Equipment assigned",
		"character", characterID, "slot", req.Slot, "item", req.ItemName)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEquipmentAssignedSuccess})
}

// HandleGrantIngredient adds ingredient units to a character's ledger
// @Summary Grant ingredients
// @Tags characters
// @Accept json
// @Produce json
// @Param characterID path string true "Character ID"
// @Param request body GrantIngredientRequest true "Grant request"
// @Success 200 {object} SuccessResponse "Ingredient granted"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Router /characters/{characterID}/ingredients [post]
func (h *CharacterHandler) HandleGrantIngredient(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	var req GrantIngredientRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant ingredient"); err != nil {
		return
	}

	err := h.characterSvc.GrantIngredient(r.Context(), characterID, req.IngredientID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Grant ingredient", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgIngredientGrantedSuccess})
}

// HandleGetIngredients returns a character's ingredient ledger
// @Summary Get ingredient ledger
// @Tags characters
// @Produce json
// @Param characterID path string true "Character ID"
// @Success 200 {object} DataResponse "Ingredient ledger"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Router /characters/{characterID}/ingredients [get]
func (h *CharacterHandler) HandleGetIngredients(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	stock, err := h.characterSvc.ListIngredients(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, "Get ingredients", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: stock})
}

// HandleGetArtifacts returns the artifacts a character has crafted
// @Summary Get crafted artifacts
// @Tags characters
// @Produce json
// @Param characterID path string true "Character ID"
// @Success 200 {object} DataResponse "Crafted artifacts"
// @Failure 404 {object} ErrorResponse "Character not found"
// @Router /characters/{characterID}/artifacts [get]
func (h *CharacterHandler) HandleGetArtifacts(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	artifacts, err := h.characterSvc.ListArtifacts(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, "Get artifacts", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: artifacts})
}
