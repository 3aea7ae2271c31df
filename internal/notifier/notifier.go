// Package notifier holds the dispatchers that announce a new contact message.
package notifier

import (
	"fmt"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/supabase"
)

// New returns the dispatcher selected by cfg.Notifier.
func New(cfg *config.Config) (domain.Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierSupabase:
		if !cfg.SupabaseConfigured() {
			return nil, fmt.Errorf("NOTIFIER=supabase requires SUPABASE_URL and SUPABASE_KEY")
		}
		client := supabase.NewFunctionsClient(cfg.SupabaseUrl, cfg.SupabaseKey, nil)
		return NewFunctionNotifier(client, cfg.NotificationFunction), nil

	case config.NotifierSMTP:
		svc := email.NewEmailService(cfg)
		if !svc.IsConfigured() {
			return nil, fmt.Errorf("NOTIFIER=smtp requires SMTP_USERNAME, SMTP_PASSWORD and CONTACT_EMAIL_TO")
		}
		return NewEmailNotifier(svc), nil

	case config.NotifierLog:
		return LogNotifier{}, nil

	default:
		return nil, fmt.Errorf("unknown NOTIFIER %q", cfg.Notifier)
	}
}
