package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tessera-games/loreforge/internal/domain"
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

	_ = v.RegisterValidation("entitykind", validateEntityKind)
	_ = v.RegisterValidation("archetype", validateArchetype)
	_ = v.RegisterValidation("draftkind", validateDraftKind)

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

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
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
		case "entitykind":
			errs[field] = "Must be player or creature"
		case "archetype":
			errs[field] = "Must be power, powered_martial or martial"
		case "draftkind":
			errs[field] = "Unknown draft kind"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateEntityKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	if kind == "" {
		return true
	}
	switch domain.EntityKind(kind) {
	case domain.EntityPlayer, domain.EntityCreature:
		return true
	}
	return false
}

func validateArchetype(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	if kind == "" {
		return true
	}
	switch domain.ArchetypeKind(kind) {
	case domain.ArchetypePower, domain.ArchetypePoweredMartial, domain.ArchetypeMartial:
		return true
	}
	return false
}

func validateDraftKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	if kind == "" {
		return true
	}
	return domain.ValidDraftKind(domain.DraftKind(kind))
}
