// Package store persists the data go-wallet-admin owns itself: dashboard
// operators and the audit log of destructive actions. Client records are not
// stored here; they live behind the Clients API.
package store

import (
	"context"

	"github.com/MKhiriev/go-wallet-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AdminRepository stores dashboard operators.
type AdminRepository interface {
	// CreateAdmin inserts admin and returns it with CreatedAt set.
	// Returns ErrLoginAlreadyExists on a duplicate login.
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)

	// FindAdminByLogin returns ErrAdminNotFound when no operator has login.
	FindAdminByLogin(ctx context.Context, login string) (models.Admin, error)
}

// AuditRepository stores audit log entries.
type AuditRepository interface {
	// SaveEntry appends one entry.
	SaveEntry(ctx context.Context, entry models.AuditEntry) error

	// ListEntries returns entries matching filter, newest first.
	ListEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error)
}
