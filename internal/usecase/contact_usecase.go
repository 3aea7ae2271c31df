package usecase

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type contactUsecase struct {
	deps ContactFormDeps
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.ContactRepository, notifier domain.Notifier, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		deps: ContactFormDeps{
			Repo:      repo,
			Notifier:  notifier,
			Validator: validation.NewContactValidator(validate),
		},
	}
}

func (uc *contactUsecase) ValidateField(ctx context.Context, field, value string) (string, error) {
	f, ok := domain.ParseField(field)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	return uc.deps.Validator.Field(f, value), nil
}

// Submit runs a one-shot form: every field is applied as if typed, then submitted.
func (uc *contactUsecase) Submit(ctx context.Context, msg domain.ContactMessage) (*domain.ContactRecord, error) {
	form := NewContactForm(uc.deps)
	for _, f := range domain.Fields() {
		form.UpdateField(f, msg.Get(f))
	}
	return form.Submit(ctx)
}

func (uc *contactUsecase) ListMessages(ctx context.Context, limit, offset int) ([]domain.ContactRecord, int, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := uc.deps.Repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	total, err := uc.deps.Repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}
	return records, total, nil
}
