package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, ok := ParseField(string(f))
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}

	_, ok := ParseField("phone")
	assert.False(t, ok)
	_, ok = ParseField("Name")
	assert.False(t, ok, "field names are case sensitive")
}

func TestContactMessageSetGet(t *testing.T) {
	var m ContactMessage
	m.Set(FieldEmail, "ada@example.com")

	assert.Equal(t, "ada@example.com", m.Get(FieldEmail))
	assert.Equal(t, ContactMessage{Email: "ada@example.com"}, m)
}

func TestValidationErrorMessage(t *testing.T) {
	err := fmt.Errorf("submit: %w", &ValidationError{Fields: FieldErrors{
		FieldSubject: "Subject must be at least 4 characters",
		FieldEmail:   "Please enter a valid email address",
	}})

	vErr, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, vErr.Fields, 2)
	assert.Equal(t, "invalid contact message: email, subject", vErr.Error())
}

func TestFieldErrorsClone(t *testing.T) {
	orig := FieldErrors{FieldName: "x"}
	c := orig.Clone()
	c[FieldName] = "y"
	assert.Equal(t, "x", orig[FieldName])
}
