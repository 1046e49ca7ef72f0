package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Members() MemberRepository
	SyncLogs() SyncLogRepository
	Content() ContentRepository
}
