// Package sqlite stores contact messages in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio-backend/internal/domain"
)

const contactSchema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at DESC);
`

// ContactRepo implements domain.ContactRepository on SQLite.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Insert saves one message. created_at is stored as unix nanoseconds.
func (r *ContactRepo) Insert(ctx context.Context, record *domain.ContactRecord) error {
	query := `INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Name, record.Email, record.Subject, record.Message, record.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *ContactRepo) List(ctx context.Context, limit, offset int) ([]domain.ContactRecord, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	records := []domain.ContactRecord{}
	for rows.Next() {
		var rec domain.ContactRecord
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Subject, &rec.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return n, nil
}

// Ping verifies database connectivity.
func (r *ContactRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *ContactRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, contactSchema); err != nil {
		return fmt.Errorf("migrate contact_messages: %w", err)
	}
	return nil
}

func (r *ContactRepo) Close() error {
	return r.db.Close()
}
