package notifier

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/security"
)

// LogNotifier only records that a message arrived.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg domain.ContactMessage) error {
	logger.Log.Info("New contact message", "from", security.MaskEmail(msg.Email), "subject", msg.Subject)
	return nil
}
