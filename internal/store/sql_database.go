package store

import (
	"database/sql"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database handle that knows its SQL dialect.
type DB struct {
	*sql.DB
	dialect migrations.Dialect
	logger  *logger.Logger
}

// Migrate applies the embedded migrations of the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
