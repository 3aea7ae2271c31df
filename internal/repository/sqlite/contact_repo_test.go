package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *ContactRepo {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteConnection(ctx, filepath.Join(t.TempDir(), "contact.db"))
	require.NoError(t, err)

	repo := NewContactRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(ctx))
	return repo
}

func TestInsertAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		err := repo.Insert(ctx, &domain.ContactRecord{
			ID: fmt.Sprintf("id-%d", i),
			ContactMessage: domain.ContactMessage{
				Name:    "Ada",
				Email:   "ada@example.com",
				Subject: fmt.Sprintf("Subject %d", i),
				Message: "This is a sufficiently long message.",
			},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	records, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id-2", records[0].ID, "newest first")
	assert.Equal(t, "Subject 2", records[0].Subject)
	assert.True(t, records[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "id-0", rest[0].ID)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestInsertDuplicateIDFails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	rec := &domain.ContactRecord{ID: "same", CreatedAt: time.Now()}

	require.NoError(t, repo.Insert(ctx, rec))
	assert.Error(t, repo.Insert(ctx, rec))
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Migrate(context.Background()))
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestListEmpty(t *testing.T) {
	repo := newTestRepo(t)
	records, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}
