package validation

import (
	"errors"
	"strings"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ruleFor returns the validator tag guarding a contact field.
func ruleFor(f domain.Field) string {
	switch f {
	case domain.FieldName:
		return "min=2"
	case domain.FieldEmail:
		return "required,email"
	case domain.FieldSubject:
		return "min=4"
	case domain.FieldMessage:
		return "min=10"
	}
	return ""
}

// ContactValidator applies the contact form rules one field at a time.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator wraps v, or a fresh validator when v is nil.
func NewContactValidator(v *validator.Validate) *ContactValidator {
	if v == nil {
		v = validator.New()
	}
	return &ContactValidator{validate: v}
}

// Field validates a single value and returns its user-facing error, or "" when valid.
// Surrounding whitespace does not count towards minimum lengths.
func (cv *ContactValidator) Field(f domain.Field, value string) string {
	rule := ruleFor(f)
	if rule == "" {
		return ""
	}

	err := cv.validate.Var(strings.TrimSpace(value), rule)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return formatFieldError(f, fieldErrs[0])
	}
	return fieldLabel(f) + " is invalid"
}

// All validates every field independently. The result holds an entry for each
// failing field and nothing for passing ones.
func (cv *ContactValidator) All(msg domain.ContactMessage) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for _, f := range domain.Fields() {
		if m := cv.Field(f, msg.Get(f)); m != "" {
			errs[f] = m
		}
	}
	return errs
}
