package cli

import (
	"fmt"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func sendCmd(a *app) *cobra.Command {
	var msg domain.ContactMessage

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a contact message through the same flow as the website",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dispatcher, err := a.newNotifier(a.cfg)
			if err != nil {
				return err
			}

			return a.withStore(cmd.Context(), func(store repository.Store) error {
				uc := usecase.NewContactUsecase(store, dispatcher, validator.New())
				record, err := uc.Submit(cmd.Context(), msg)
				if err != nil {
					if vErr, ok := domain.IsValidationError(err); ok {
						for _, f := range domain.Fields() {
							if m, bad := vErr.Fields[f]; bad {
								fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f, m)
							}
						}
					}
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Message stored as %s\n", record.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&msg.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "sender email address")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&msg.Message, "message", "", "message body")
	return cmd
}
