package postgres

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const contactSchema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages (created_at DESC);
`

type ContactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Insert(ctx context.Context, record *domain.ContactRecord) error {
	query := `INSERT INTO contact_messages (id, name, email, subject, message, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		record.ID, record.Name, record.Email, record.Subject, record.Message, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *ContactRepo) List(ctx context.Context, limit, offset int) ([]domain.ContactRecord, error) {
	query := `SELECT id, name, email, subject, message, created_at
              FROM contact_messages
              ORDER BY created_at DESC, id
              LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	records := []domain.ContactRecord{}
	for rows.Next() {
		var rec domain.ContactRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Subject, &rec.Message, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return n, nil
}

func (r *ContactRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Migrate creates the contact_messages table when missing.
func (r *ContactRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, contactSchema); err != nil {
		return fmt.Errorf("migrate contact_messages: %w", err)
	}
	return nil
}

func (r *ContactRepo) Close() error {
	r.db.Close()
	return nil
}
