package store

import (
	"github.com/MKhiriev/go-wallet-admin/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	adminsTable = "admins"
	auditTable  = "audit_log"

	// defaultAuditLimit caps audit listings that set no limit.
	defaultAuditLimit = 100
	// maxAuditLimit caps every audit listing.
	maxAuditLimit = 1000
)

var (
	adminColumns = []string{"admin_id", "login", "password_hash", "created_at"}
	auditColumns = []string{"entry_id", "actor", "action", "target_id", "created_at"}
)

func buildCreateAdminQuery(b sq.StatementBuilderType, admin models.Admin) (string, []any, error) {
	return b.Insert(adminsTable).
		Columns("admin_id", "login", "password_hash").
		Values(admin.AdminID, admin.Login, admin.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildFindAdminByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(adminColumns...).
		From(adminsTable).
		Where(sq.Eq{"login": login}).
		Limit(1).
		ToSql()
}

func buildSaveAuditEntryQuery(b sq.StatementBuilderType, entry models.AuditEntry) (string, []any, error) {
	return b.Insert(auditTable).
		Columns(auditColumns...).
		Values(entry.EntryID, entry.Actor, string(entry.Action), entry.TargetID, entry.CreatedAt).
		ToSql()
}

func buildListAuditEntriesQuery(b sq.StatementBuilderType, filter models.AuditFilter) (string, []any, error) {
	query := b.Select(auditColumns...).
		From(auditTable).
		OrderBy("created_at DESC")

	if filter.Action != "" {
		query = query.Where(sq.Eq{"action": string(filter.Action)})
	}
	if filter.Actor != "" {
		query = query.Where(sq.Eq{"actor": filter.Actor})
	}

	limit := filter.Limit
	switch {
	case limit == 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}

	return query.Limit(limit).ToSql()
}
