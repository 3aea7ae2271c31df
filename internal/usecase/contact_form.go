package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/security"
	"portfolio-backend/pkg/validation"

	"github.com/google/uuid"
)

// ContactFormDeps are the collaborators shared by every ContactForm.
type ContactFormDeps struct {
	Repo      domain.ContactRepository
	Notifier  domain.Notifier
	Validator *validation.ContactValidator
	// Audit defaults to security.DefaultLogger().
	Audit *security.SecurityLogger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// ContactForm holds one visitor's draft message and drives its submission.
// It is safe for concurrent use; at most one Submit runs at a time.
type ContactForm struct {
	deps ContactFormDeps

	mu     sync.Mutex
	draft  domain.ContactMessage
	errors domain.FieldErrors

	submitting atomic.Bool
}

// NewContactForm returns a form with an empty draft and no field errors.
func NewContactForm(deps ContactFormDeps) *ContactForm {
	if deps.Validator == nil {
		deps.Validator = validation.NewContactValidator(nil)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &ContactForm{
		deps:   deps,
		errors: domain.FieldErrors{},
	}
}

// UpdateField overwrites one draft field and re-validates only that field.
func (f *ContactForm) UpdateField(field domain.Field, value string) {
	if _, ok := domain.ParseField(string(field)); !ok {
		return
	}
	msg := f.deps.Validator.Field(field, value)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft.Set(field, value)
	if msg == "" {
		delete(f.errors, field)
	} else {
		f.errors[field] = msg
	}
}

// ValidateAll re-checks every field, replaces the error map and reports whether
// the draft is valid.
func (f *ContactForm) ValidateAll() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errors = f.deps.Validator.All(f.draft)
	return len(f.errors) == 0
}

// Draft returns a copy of the current draft.
func (f *ContactForm) Draft() domain.ContactMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Errors returns a copy of the per-field error map.
func (f *ContactForm) Errors() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Clone()
}

// Submitting reports whether a submission is in flight.
func (f *ContactForm) Submitting() bool {
	return f.submitting.Load()
}

// Submit validates the whole draft, stores it and then notifies on a best-effort
// basis. Only the store call can fail a valid submission. On success the draft
// is reset to empty strings.
func (f *ContactForm) Submit(ctx context.Context) (*domain.ContactRecord, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return nil, domain.ErrSubmissionInFlight
	}
	defer f.submitting.Store(false)

	// A started submission runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	audit := f.audit()

	if !f.ValidateAll() {
		errs := f.Errors()
		audit.LogValidationFailed(ctx, fieldNames(errs))
		return nil, &domain.ValidationError{Fields: errs}
	}

	record := &domain.ContactRecord{
		ID:             uuid.NewString(),
		ContactMessage: f.Draft(),
		CreatedAt:      f.deps.Clock().UTC(),
	}

	if err := f.deps.Repo.Insert(ctx, record); err != nil {
		logger.Log.Error("Failed to save contact message", "error", err)
		audit.LogPersistFailed(ctx, record.Email, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err)
	}

	if f.deps.Notifier != nil {
		if err := f.deps.Notifier.Notify(ctx, record.ContactMessage); err != nil {
			logger.Log.Warn("Error sending notification", "message_id", record.ID, "error", err)
			audit.LogNotifyFailed(ctx, record.ID, err)
		}
	}

	audit.LogContactSubmitted(ctx, record.ID, record.Email)
	f.reset()
	return record, nil
}

func (f *ContactForm) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = domain.ContactMessage{}
	f.errors = domain.FieldErrors{}
}

func (f *ContactForm) audit() *security.SecurityLogger {
	if f.deps.Audit != nil {
		return f.deps.Audit
	}
	return security.DefaultLogger()
}

func fieldNames(errs domain.FieldErrors) []string {
	names := make([]string, 0, len(errs))
	for field := range errs {
		names = append(names, string(field))
	}
	sort.Strings(names)
	return names
}
