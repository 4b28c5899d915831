package store

import "github.com/MKhiriev/go-wallet-admin/internal/logger"

// Repositories groups the repositories of the dashboard server.
type Repositories struct {
	AdminRepository AdminRepository
	AuditRepository AuditRepository
}

// NewRepositories wires every repository onto the server database.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		AdminRepository: NewAdminRepository(db, logger),
		AuditRepository: NewAuditRepository(db, logger),
	}
}

// ConsoleRepositories groups the repositories of the terminal console, which
// keeps only a local audit log.
type ConsoleRepositories struct {
	AuditRepository AuditRepository
}

// NewConsoleRepositories wires the console repositories onto its local
// database.
func NewConsoleRepositories(db *DB, logger *logger.Logger) *ConsoleRepositories {
	return &ConsoleRepositories{
		AuditRepository: NewAuditRepository(db, logger),
	}
}
