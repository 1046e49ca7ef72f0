package model

import "time"

// SyncTypePointUpdate tags log rows produced by the point-update webhook.
const SyncTypePointUpdate = "point_update"

// SyncLogEntry records one POS webhook delivery. Rows are append-only:
// nothing in the system updates or deletes them, and repeated deliveries
// of the same requestId produce repeated rows.
type SyncLogEntry struct {
	ID           int64
	RequestID    string
	Status       string
	SuccessCount int64
	ErrorCount   int64
	Type         string
	CreatedAt    time.Time
}
