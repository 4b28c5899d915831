package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/models"
)

type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] for either dialect.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditRepository) SaveEntry(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveAuditEntryQuery(r.db.builder(), entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.SaveEntry").Msg("error inserting audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAuditEntryNotSaved
	}

	return nil
}

func (r *auditRepository) ListEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuditEntriesQuery(r.db.builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListEntries").Msg("error selecting audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0)
	for rows.Next() {
		var (
			entry  models.AuditEntry
			action string
		)
		if err = rows.Scan(&entry.EntryID, &entry.Actor, &action, &entry.TargetID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Action = models.AuditAction(action)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
