package domain

import "time"

// AuditAction is the kind of mutation an audit record describes.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// AuditEntity is the kind of record a mutation touched.
type AuditEntity string

const (
	AuditEntityMember      AuditEntity = "MEMBER"
	AuditEntityTransaction AuditEntity = "TRANSACTION"
)

// AuditRecord is an immutable trail entry written exactly once per
// successful ledger mutation. Records live only as long as the
// process; the trail is kept newest-first.
type AuditRecord struct {
	ID        string
	Timestamp time.Time
	Action    AuditAction
	Entity    AuditEntity
	Details   string
}
