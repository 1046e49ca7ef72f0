package repository

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
)

// MemberRepository describes the capability surface the system needs from
// the member store: keyed reads, a single-field equality lookup, a bounded
// scan and a top-level merge. The POS integration only ever uses the
// read-only subset.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) (*model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	// FindByCustomerCode returns the first member carrying the code in
	// store order. Uniqueness of customerCode is not enforced anywhere.
	FindByCustomerCode(ctx context.Context, code string) (*model.Member, error)
	// ScanAll returns up to limit members in stable store order. The limit
	// is a hard truncation, not a pagination cursor.
	ScanAll(ctx context.Context, limit int) ([]model.Member, error)
	MergeProfile(ctx context.Context, id string, patch model.ProfilePatch) error
}
