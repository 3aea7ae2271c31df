// Package cli implements contactctl, the operator command line for the contact backend.
package cli

import (
	"context"
	"os"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/notifier"
	"portfolio-backend/internal/repository"
	"portfolio-backend/pkg/logger"

	"github.com/spf13/cobra"
)

// app carries the loaded configuration and the constructors commands use to reach
// the record store and notification dispatcher.
type app struct {
	cfg         *config.Config
	openStore   func(ctx context.Context, cfg *config.Config) (repository.Store, error)
	newNotifier func(cfg *config.Config) (domain.Notifier, error)
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		openStore:   repository.Open,
		newNotifier: notifier.New,
	})
}

func newRootCmd(a *app) *cobra.Command {
	var (
		store      string
		sqlitePath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:          "contactctl",
		Short:        "Operate the portfolio contact backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("store") {
				cfg.RecordStore = store
			}
			if cmd.Flags().Changed("sqlite-path") {
				cfg.SQLitePath = sqlitePath
			}
			logger.Init(logLevel)
			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&store, "store", "", "record store to use (postgres|sqlite); defaults to RECORD_STORE")
	cmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite file; defaults to SQLITE_PATH")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level for diagnostics written to stdout")

	cmd.AddCommand(migrateCmd(a))
	cmd.AddCommand(messagesCmd(a))
	cmd.AddCommand(sendCmd(a))
	return cmd
}

// withStore opens the configured store for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(repository.Store) error) error {
	store, err := a.openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
