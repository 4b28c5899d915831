// Package service holds the business logic of go-wallet-admin. Both the web
// dashboard and the terminal console call into it.
package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientService lists, inspects and deletes platform clients.
type ClientService interface {
	// List fetches every client and keeps those matching query.
	List(ctx context.Context, query string) ([]models.Client, error)

	// Get fetches one client.
	Get(ctx context.Context, id string) (models.Client, error)

	// Transactions fetches the transaction history of one client.
	Transactions(ctx context.Context, id string) ([]models.Transaction, error)

	// Delete removes a client and records actor in the audit log.
	Delete(ctx context.Context, actor, id string) error

	// DeleteAndReload deletes a client and then fetches the list exactly
	// once, filtered by query. A failed delete returns without fetching.
	DeleteAndReload(ctx context.Context, actor, id, query string) ([]models.Client, error)
}

// BalanceService builds the balance card of a client.
type BalanceService interface {
	// Card returns the card for usd. With showBTC it fetches the rate once
	// and converts; a failed fetch is reported inside the card.
	Card(ctx context.Context, usd decimal.Decimal, showBTC bool) models.BalanceCard
}

// RegistrationService forwards landing-page sign-ups.
type RegistrationService interface {
	Register(ctx context.Context, registration models.Registration) error
}

// AuthService signs dashboard operators in.
type AuthService interface {
	Login(ctx context.Context, login, password string) (models.Admin, error)
	EnsureAdmin(ctx context.Context, login, password string) (models.Admin, error)
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuditService records and lists destructive operator actions.
type AuditService interface {
	Record(ctx context.Context, entry models.AuditEntry) error
	Recent(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MetricsRecorder receives business counters. *metrics.Metrics satisfies it.
type MetricsRecorder interface {
	IncrementClientsDeleted()
	IncrementBTCRateFailures()
}

type nopRecorder struct{}

func (nopRecorder) IncrementClientsDeleted()  {}
func (nopRecorder) IncrementBTCRateFailures() {}
