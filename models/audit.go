package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names a destructive operation recorded in the audit log.
type AuditAction string

const (
	// AuditClientDelete is recorded after a client was deleted upstream.
	AuditClientDelete AuditAction = "client.delete"
)

// AuditEntry is one row of the audit log.
type AuditEntry struct {
	EntryID   uuid.UUID   `json:"entry_id"`
	Actor     string      `json:"actor"`
	Action    AuditAction `json:"action"`
	TargetID  string      `json:"target_id"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuditFilter narrows an audit log listing.
type AuditFilter struct {
	// Action keeps only entries of this action when non-empty.
	Action AuditAction

	// Actor keeps only entries made by this actor when non-empty.
	Actor string

	// Limit caps the number of entries; zero means the repository default.
	Limit uint64
}
