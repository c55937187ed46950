package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors (blocking, detected before any commit attempt)
	ErrMsgNoEffects         = "no effects selected"
	ErrMsgMixedCategories   = "cannot mix categories in one attempt"
	ErrMsgUnresolvedChoice  = "unresolved choice"
	ErrMsgInvalidTransition = "invalid attempt transition"

	// Pairing errors
	ErrMsgElementUnavailable = "element not available in remaining pool"
	ErrMsgPairNotFound       = "pair not found"

	// Ledger errors (retryable at commit time)
	ErrMsgInsufficientIngredients = "insufficient ingredients"

	// Catalog errors
	ErrMsgRecipeNotFound    = "recipe not found"
	ErrMsgRecipeLocked      = "recipe is locked"
	ErrMsgInvalidUnlockCode = "invalid unlock code"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgInvalidSlot       = "invalid equipment slot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// Validation errors
	ErrNoEffects         = errors.New(ErrMsgNoEffects)
	ErrMixedCategories   = errors.New(ErrMsgMixedCategories)
	ErrUnresolvedChoice  = errors.New(ErrMsgUnresolvedChoice)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	// Pairing errors
	ErrElementUnavailable = errors.New(ErrMsgElementUnavailable)
	ErrPairNotFound       = errors.New(ErrMsgPairNotFound)

	// Ledger errors
	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)

	// Catalog errors
	ErrRecipeNotFound    = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeLocked      = errors.New(ErrMsgRecipeLocked)
	ErrInvalidUnlockCode = errors.New(ErrMsgInvalidUnlockCode)

	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrInvalidSlot       = errors.New(ErrMsgInvalidSlot)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
