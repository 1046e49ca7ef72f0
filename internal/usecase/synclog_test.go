package usecase

import (
	"context"
	"testing"

	"github.com/uubo/memberhub/internal/domain/model"
	testhelpers "github.com/uubo/memberhub/internal/test"
)

func TestSyncRecordPointUpdate(t *testing.T) {
	repo := &testhelpers.SyncLogRepositoryStub{}
	uc := NewSyncUseCase(repo)

	entry, err := uc.RecordPointUpdate(context.Background(), "req-1", "completed", 10, 2)
	if err != nil {
		t.Fatalf("record returned error: %v", err)
	}
	if entry.Type != model.SyncTypePointUpdate {
		t.Fatalf("unexpected type: %s", entry.Type)
	}
	if entry.RequestID != "req-1" || entry.Status != "completed" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.SuccessCount != 10 || entry.ErrorCount != 2 {
		t.Fatalf("unexpected counts: %+v", entry)
	}
	if len(repo.Entries) != 1 {
		t.Fatalf("expected one appended entry, got %d", len(repo.Entries))
	}
}

func TestSyncRecordPointUpdateNoDeduplication(t *testing.T) {
	repo := &testhelpers.SyncLogRepositoryStub{}
	uc := NewSyncUseCase(repo)

	for i := 0; i < 3; i++ {
		if _, err := uc.RecordPointUpdate(context.Background(), "req-1", "completed", 1, 0); err != nil {
			t.Fatalf("record returned error: %v", err)
		}
	}
	if len(repo.Entries) != 3 {
		t.Fatalf("redelivered webhooks must append again, got %d entries", len(repo.Entries))
	}
}
