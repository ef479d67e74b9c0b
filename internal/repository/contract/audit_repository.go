package contract

import (
	"context"

	"talentflow-be/internal/model"
)

// AuditRepository writes the durable audit trail (system_logs). Distinct
// from the zap file logger: these rows back reporting queries, not ops
// debugging.
type AuditRepository interface {
	Record(ctx context.Context, level, module, message string, details map[string]interface{}) error
	FindRecent(ctx context.Context, limit int) ([]*model.SystemLog, error)
}
