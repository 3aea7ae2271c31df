package notifier

import (
	"context"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
)

// EmailNotifier mails the message to the site owner over SMTP.
type EmailNotifier struct {
	svc *email.EmailService
}

func NewEmailNotifier(svc *email.EmailService) *EmailNotifier {
	return &EmailNotifier{svc: svc}
}

// Notify ignores ctx: net/smtp has no context support.
func (n *EmailNotifier) Notify(_ context.Context, msg domain.ContactMessage) error {
	return n.svc.SendContactEmail(email.ContactEmailData{
		SenderName:  strings.TrimSpace(msg.Name),
		SenderEmail: strings.TrimSpace(msg.Email),
		Subject:     strings.TrimSpace(msg.Subject),
		Message:     strings.TrimSpace(msg.Message),
	})
}
