// Package repository selects the record store backing contact messages.
package repository

import (
	"context"
	"fmt"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/repository/sqlite"
	"portfolio-backend/pkg/database"
)

// Store is a record store that also owns its schema and connection.
type Store interface {
	domain.ContactRepository
	Migrate(ctx context.Context) error
	Close() error
}

// Open connects to the store named by cfg.RecordStore.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.RecordStore {
	case config.StorePostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return postgres.NewContactRepository(pool), nil

	case config.StoreSQLite:
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store := sqlite.NewContactRepository(db)
		// Local stores are created on first use
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown RECORD_STORE %q", cfg.RecordStore)
	}
}
