package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactUsecaseValidateField(t *testing.T) {
	uc := usecase.NewContactUsecase(new(MockContactRepo), new(MockNotifier), validator.New())
	ctx := context.Background()

	t.Run("Should return message for invalid value", func(t *testing.T) {
		msg, err := uc.ValidateField(ctx, "subject", "Hi")
		require.NoError(t, err)
		assert.Equal(t, "Subject must be at least 4 characters", msg)
	})

	t.Run("Should return empty message for valid value", func(t *testing.T) {
		msg, err := uc.ValidateField(ctx, "email", "ada@example.com")
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("Should reject unknown field", func(t *testing.T) {
		_, err := uc.ValidateField(ctx, "phone", "123")
		assert.ErrorIs(t, err, domain.ErrUnknownField)
	})
}

func TestContactUsecaseSubmit(t *testing.T) {
	t.Run("Should store and notify a valid message", func(t *testing.T) {
		repo := new(MockContactRepo)
		notifier := new(MockNotifier)
		repo.On("Insert", mock.Anything, withPayload(validDraft)).Return(nil).Once()
		notifier.On("Notify", mock.Anything, validDraft).Return(nil).Once()

		uc := usecase.NewContactUsecase(repo, notifier, validator.New())
		record, err := uc.Submit(context.Background(), validDraft)

		require.NoError(t, err)
		assert.Equal(t, validDraft, record.ContactMessage)
		assert.WithinDuration(t, time.Now().UTC(), record.CreatedAt, time.Minute)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Should report every invalid field", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, new(MockNotifier), validator.New())

		_, err := uc.Submit(context.Background(), domain.ContactMessage{Name: "Ada"})

		vErr, ok := domain.IsValidationError(err)
		require.True(t, ok)
		assert.Len(t, vErr.Fields, 3)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Should keep each call independent", func(t *testing.T) {
		repo := new(MockContactRepo)
		notifier := new(MockNotifier)
		repo.On("Insert", mock.Anything, withPayload(validDraft)).Return(nil).Twice()
		notifier.On("Notify", mock.Anything, validDraft).Return(nil).Twice()

		uc := usecase.NewContactUsecase(repo, notifier, validator.New())
		first, err := uc.Submit(context.Background(), validDraft)
		require.NoError(t, err)
		second, err := uc.Submit(context.Background(), validDraft)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID, "no deduplication of repeated submissions")
	})
}

func TestContactUsecaseListMessages(t *testing.T) {
	records := []domain.ContactRecord{{ID: "1", ContactMessage: validDraft}}

	t.Run("Should clamp limit and offset", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("List", mock.Anything, 100, 0).Return(records, nil).Once()
		repo.On("Count", mock.Anything).Return(1, nil).Once()

		uc := usecase.NewContactUsecase(repo, new(MockNotifier), validator.New())
		got, total, err := uc.ListMessages(context.Background(), 500, -3)

		require.NoError(t, err)
		assert.Equal(t, records, got)
		assert.Equal(t, 1, total)
	})

	t.Run("Should default limit", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("List", mock.Anything, 20, 40).Return([]domain.ContactRecord{}, nil).Once()
		repo.On("Count", mock.Anything).Return(40, nil).Once()

		uc := usecase.NewContactUsecase(repo, new(MockNotifier), validator.New())
		_, total, err := uc.ListMessages(context.Background(), 0, 40)

		require.NoError(t, err)
		assert.Equal(t, 40, total)
	})

	t.Run("Should wrap store errors", func(t *testing.T) {
		repo := new(MockContactRepo)
		cause := errors.New("db down")
		repo.On("List", mock.Anything, 20, 0).Return(nil, cause).Once()

		uc := usecase.NewContactUsecase(repo, new(MockNotifier), validator.New())
		_, _, err := uc.ListMessages(context.Background(), 0, 0)

		assert.ErrorIs(t, err, cause)
		repo.AssertNotCalled(t, "Count", mock.Anything)
	})
}

func TestHealthUsecase(t *testing.T) {
	t.Run("Should be healthy with memory rate limiting", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Ping", mock.Anything).Return(nil)

		status, ok := usecase.NewHealthUsecase(repo, func(context.Context) error {
			return errors.New("redis: client not initialized")
		}).Check(context.Background())

		assert.True(t, ok)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "memory", status["rate_limit"])
	})

	t.Run("Should degrade when store is unreachable", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Ping", mock.Anything).Return(errors.New("refused"))

		status, ok := usecase.NewHealthUsecase(repo, nil).Check(context.Background())

		assert.False(t, ok)
		assert.Equal(t, "unreachable", status["record_store"])
		assert.NotContains(t, status, "rate_limit")
	})
}
