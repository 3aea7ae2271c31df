package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"portfolio-backend/internal/repository"

	"github.com/spf13/cobra"
)

func messagesCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "messages",
		Short: "Inspect stored contact messages",
	}

	c.AddCommand(messagesListCmd(a))
	return c
}

func messagesListCmd(a *app) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			if offset < 0 {
				return fmt.Errorf("--offset must not be negative")
			}

			return a.withStore(cmd.Context(), func(store repository.Store) error {
				total, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				records, err := store.List(cmd.Context(), limit, offset)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "(no messages found)")
					return nil
				}

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tRECEIVED\tNAME\tEMAIL\tSUBJECT")
				for _, r := range records {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						r.ID, r.CreatedAt.Format(time.RFC3339), r.Name, r.Email, r.Subject)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nShowing %d of %d\n", len(records), total)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of messages")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of messages to skip")
	return cmd
}
