package bootstrap

import "context"

// AuditLog is one security-relevant action worth keeping a trail of:
// punch edits, password changes, shutdowns.
type AuditLog struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
