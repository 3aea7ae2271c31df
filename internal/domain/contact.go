package domain

import (
	"context"
	"time"
)

// Field identifies one input of the contact form. The set is closed.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields returns every contact form field in form order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}
}

// ParseField maps a wire name onto a Field.
func ParseField(s string) (Field, bool) {
	switch Field(s) {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return Field(s), true
	}
	return "", false
}

// ContactMessage is a visitor's message as typed into the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of a single field.
func (m ContactMessage) Get(f Field) string {
	switch f {
	case FieldName:
		return m.Name
	case FieldEmail:
		return m.Email
	case FieldSubject:
		return m.Subject
	case FieldMessage:
		return m.Message
	}
	return ""
}

// Set overwrites a single field and leaves the rest untouched.
func (m *ContactMessage) Set(f Field, value string) {
	switch f {
	case FieldName:
		m.Name = value
	case FieldEmail:
		m.Email = value
	case FieldSubject:
		m.Subject = value
	case FieldMessage:
		m.Message = value
	}
}

// FieldErrors maps a failing field to its user-facing message.
// A field that passes its rule has no entry.
type FieldErrors map[Field]string

// Clone returns an independent copy.
func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// ContactRecord is a message as persisted by the record store.
type ContactRecord struct {
	ID string `json:"id"`
	ContactMessage
	CreatedAt time.Time `json:"created_at"`
}

// ContactRepository is the record store collaborator.
type ContactRepository interface {
	// Insert durably saves one message.
	Insert(ctx context.Context, record *ContactRecord) error
	// List returns stored messages, newest first.
	List(ctx context.Context, limit, offset int) ([]ContactRecord, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// Notifier is the notification dispatcher collaborator. Its failures never
// reach the visitor.
type Notifier interface {
	Notify(ctx context.Context, msg ContactMessage) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// ValidateField checks one field and returns its error message, empty when valid.
	ValidateField(ctx context.Context, field, value string) (string, error)
	// Submit validates, persists and notifies for a complete message.
	Submit(ctx context.Context, msg ContactMessage) (*ContactRecord, error)
	// ListMessages returns stored messages for operators along with the total count.
	ListMessages(ctx context.Context, limit, offset int) ([]ContactRecord, int, error)
}
