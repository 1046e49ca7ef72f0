package repository

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
)

// SyncLogRepository appends POS webhook deliveries. Append is the only
// operation: the log is never read back, updated or pruned by this system.
type SyncLogRepository interface {
	Append(ctx context.Context, entry model.SyncLogEntry) (*model.SyncLogEntry, error)
}
