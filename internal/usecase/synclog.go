package usecase

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/domain/repository"
)

// SyncUseCase records POS webhook deliveries.
type SyncUseCase struct {
	logs repository.SyncLogRepository
}

// NewSyncUseCase constructs SyncUseCase.
func NewSyncUseCase(logs repository.SyncLogRepository) *SyncUseCase {
	return &SyncUseCase{logs: logs}
}

// RecordPointUpdate appends one log entry for a point-update notification.
// There is no deduplication by requestId; redelivered webhooks append
// again, which matches the at-least-once delivery of the POS batch jobs.
func (u *SyncUseCase) RecordPointUpdate(ctx context.Context, requestID, status string, successCount, errorCount int64) (*model.SyncLogEntry, error) {
	entry := model.SyncLogEntry{
		RequestID:    requestID,
		Status:       status,
		SuccessCount: successCount,
		ErrorCount:   errorCount,
		Type:         model.SyncTypePointUpdate,
	}
	return u.logs.Append(ctx, entry)
}
