package handler

import (
	"net/http"

	"github.com/feybrew/cauldron/internal/logger"
	"github.com/feybrew/cauldron/internal/recipe"
)

// UnlockRecipeRequest represents the request to redeem an unlock code
type UnlockRecipeRequest struct {
	CharacterID string `json:"character_id" validate:"required,uuid4"`
	Code        string `json:"code" validate:"required,max=64"`
}

// RecipeHandler handles recipe catalog HTTP requests
type RecipeHandler struct {
	recipeSvc recipe.Service
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeSvc recipe.Service) *RecipeHandler {
	return &RecipeHandler{recipeSvc: recipeSvc}
}

// HandleGetRecipes returns the catalog visible to a character
// @Summary List visible recipes
// @Description Returns public recipes plus secret recipes the character has unlocked, in table order
// @Tags recipes
// @Produce json
// @Param character_id query string false "Character ID; omit for the public catalog only"
// @Success 200 {object} DataResponse "Visible recipes"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /recipes [get]
func (h *RecipeHandler) HandleGetRecipes(w http.ResponseWriter, r *http.Request) {
	characterID := GetOptionalQueryParam(r, "character_id", "")

	recipes, err := h.recipeSvc.VisibleRecipes(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, "Get recipes", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: recipes})
}

// HandleUnlockRecipe redeems an unlock code for a character
// @Summary Redeem a recipe unlock code
// @Description Unlocks the secret recipe matching the code; redeeming twice is idempotent
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body UnlockRecipeRequest true "Unlock request"
// @Success 200 {object} DataResponse "Recipe unlocked"
// @Failure 400 {object} ErrorResponse "Invalid unlock code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /recipes/unlock [post]
func (h *RecipeHandler) HandleUnlockRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req UnlockRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unlock recipe"); err != nil {
		return
	}

	unlocked, err := h.recipeSvc.RedeemUnlockCode(r.Context(), req.CharacterID, req.Code)
	if err != nil {
		respondServiceError(w, r, "Unlock recipe", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgRecipeUnlockedSuccess,
		Data:    unlocked,
	})
}
