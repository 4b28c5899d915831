package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/models"
)

// adminRepository is the SQL implementation of [AdminRepository].
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new operator and returns it with the
// database-assigned CreatedAt.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver error → wrapped as "unexpected DB error".
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAdminQuery(r.db.builder(), admin)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error building query")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&admin.CreatedAt); err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error inserting admin")
		if isUniqueViolation(err) {
			return models.Admin{}, ErrLoginAlreadyExists
		}
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return admin, nil
}

// FindAdminByLogin returns the operator with the given login or
// [ErrAdminNotFound].
func (r *adminRepository) FindAdminByLogin(ctx context.Context, login string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAdminByLoginQuery(r.db.builder(), login)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.FindAdminByLogin").Msg("error building query")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Admin
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.AdminID, &found.Login, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.FindAdminByLogin").Msg("error selecting admin")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
