package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/migrations"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteAuditRepo(t *testing.T) AuditRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{
		DSN: filepath.Join(t.TempDir(), "nested", "console.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return NewAuditRepository(db, logger.Nop())
}

func entry(actor, target string, at time.Time) models.AuditEntry {
	return models.AuditEntry{
		EntryID:   uuid.New(),
		Actor:     actor,
		Action:    models.AuditClientDelete,
		TargetID:  target,
		CreatedAt: at,
	}
}

func TestAuditRepository_SQLite_SaveAndList(t *testing.T) {
	repo := newSQLiteAuditRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	first := entry("console:alice", "a1", base)
	second := entry("web:root", "b2", base.Add(time.Minute))
	third := entry("console:alice", "c3", base.Add(2*time.Minute))

	for _, e := range []models.AuditEntry{first, second, third} {
		require.NoError(t, repo.SaveEntry(ctx, e))
	}

	all, err := repo.ListEntries(ctx, models.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.EntryID, all[0].EntryID, "newest first")
	assert.Equal(t, first.EntryID, all[2].EntryID)
	assert.Equal(t, models.AuditClientDelete, all[0].Action)
	assert.True(t, third.CreatedAt.Equal(all[0].CreatedAt))

	byActor, err := repo.ListEntries(ctx, models.AuditFilter{Actor: "console:alice", Limit: 1})
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, "c3", byActor[0].TargetID)
}

func TestAuditRepository_SQLite_DuplicateID(t *testing.T) {
	repo := newSQLiteAuditRepo(t)
	ctx := context.Background()

	e := entry("web:root", "a1", time.Now().UTC())
	require.NoError(t, repo.SaveEntry(ctx, e))

	err := repo.SaveEntry(ctx, e)
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}

func TestAuditRepository_Postgres_NoRowsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditRepository(&DB{DB: db, dialect: migrations.Postgres, logger: logger.Nop()}, logger.Nop())

	mock.ExpectExec(`INSERT INTO audit_log \(entry_id,actor,action,target_id,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.SaveEntry(context.Background(), entry("web:root", "a1", time.Now()))
	assert.ErrorIs(t, err, ErrAuditEntryNotSaved)
}

func TestAuditRepository_Postgres_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditRepository(&DB{DB: db, dialect: migrations.Postgres, logger: logger.Nop()}, logger.Nop())

	mock.ExpectQuery("SELECT entry_id").WillReturnError(assert.AnError)

	_, err = repo.ListEntries(context.Background(), models.AuditFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewConnectSQLite_InMemory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, migrations.SQLite, db.dialect)
	assert.NoError(t, db.Migrate())
}
