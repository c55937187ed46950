package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again."

	// Brewing messages
	ErrMsgNoEffectsError          = "Pair elements into at least one effect before brewing"
	ErrMsgMixedCategoriesError    = "All effects in one brew must share a category"
	ErrMsgUnresolvedChoiceError   = "Resolve all effect choices before brewing"
	ErrMsgElementUnavailableError = "That element is not available in the remaining pool"
	ErrMsgInsufficientItemsError  = "Not enough ingredients"
	ErrMsgCommitRetryableError    = "Brew could not be committed. Your attempt is preserved; try again."

	// Catalog messages
	ErrMsgRecipeNotFoundError    = "Recipe not found"
	ErrMsgRecipeLockedError      = "Recipe is locked"
	ErrMsgInvalidUnlockCodeError = "Invalid unlock code"

	// Character messages
	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgInvalidSlotError       = "Invalid equipment slot"
)

// Success messages for API responses
const (
	MsgRecipeUnlockedSuccess    = "Recipe unlocked"
	MsgEquipmentAssignedSuccess = "Equipment assigned"
	MsgIngredientGrantedSuccess = "Ingredient granted"
)
