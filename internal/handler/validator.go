package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/feybrew/cauldron/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for the element vocabulary and equipment slots
	_ = v.RegisterValidation("element", validateElement)
	_ = v.RegisterValidation("slot", validateSlot)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "element":
			errs[field] = "Unknown element"
		case "slot":
			errs[field] = "Invalid equipment slot"
		case "uuid4":
			errs[field] = "Must be a UUID"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidElements defines the fixed element vocabulary
var ValidElements = map[domain.Element]bool{
	domain.ElementFire:     true,
	domain.ElementWater:    true,
	domain.ElementEarth:    true,
	domain.ElementAir:      true,
	domain.ElementPositive: true,
	domain.ElementNegative: true,
}

func validateElement(fl validator.FieldLevel) bool {
	element := fl.Field().String()
	if element == "" {
		return true
	}
	return ValidElements[domain.Element(strings.ToLower(element))]
}

func validateSlot(fl validator.FieldLevel) bool {
	slot := fl.Field().String()
	if slot == "" {
		return true
	}
	return domain.ValidSlot(domain.EquipmentSlot(strings.ToLower(slot)))
}
