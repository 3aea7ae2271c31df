package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrPersistenceFailed marks a submission whose record store insert failed.
	ErrPersistenceFailed = errors.New("contact message could not be saved")
	// ErrSubmissionInFlight is returned when a form already has a submission running.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrUnknownField is returned for a field name outside the contact form.
	ErrUnknownField = errors.New("unknown contact field")
)

// ValidationError carries every failing field of a rejected draft.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid contact message: %s", strings.Join(names, ", "))
}

// IsValidationError reports whether err is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
