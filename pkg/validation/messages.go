package validation

import (
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps contact fields to the labels shown next to the inputs
var fieldLabels = map[domain.Field]string{
	domain.FieldName:    "Name",
	domain.FieldEmail:   "Email",
	domain.FieldSubject: "Subject",
	domain.FieldMessage: "Message",
}

func fieldLabel(f domain.Field) string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// formatFieldError converts a single validator failure into the form's wording
func formatFieldError(f domain.Field, e validator.FieldError) string {
	label := fieldLabel(f)

	switch e.Tag() {
	case "email":
		return "Please enter a valid email address"

	case "required":
		if f == domain.FieldEmail {
			return "Please enter a valid email address"
		}
		return fmt.Sprintf("%s is required", label)

	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())

	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())

	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
