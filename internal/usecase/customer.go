package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/domain/repository"
)

// searchScanLimit caps the number of member documents one search may
// touch. It is a hard truncation: matches beyond it are unreachable.
const searchScanLimit = 100

// CustomerUseCase serves the POS-facing customer lookups.
type CustomerUseCase struct {
	members repository.MemberRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(members repository.MemberRepository) *CustomerUseCase {
	return &CustomerUseCase{members: members}
}

// Search returns summaries of members whose fullName, email or
// customerCode contains the query, case-insensitively. The scan is a
// linear pass over at most searchScanLimit records, not an indexed search.
func (u *CustomerUseCase) Search(ctx context.Context, query string) ([]model.CustomerSummary, error) {
	if query == "" {
		return nil, domainErrors.ErrMissingParameter
	}

	members, err := u.members.ScanAll(ctx, searchScanLimit)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	summaries := make([]model.CustomerSummary, 0)
	for i := range members {
		m := &members[i]
		if matchesQuery(m, needle) {
			summaries = append(summaries, m.ToSummary())
		}
	}
	return summaries, nil
}

// matchesQuery checks the three searchable fields. Matching uses the raw
// stored customerCode; the document-id fallback applies only to output.
func matchesQuery(m *model.Member, needle string) bool {
	fields := []string{
		fieldOrEmpty(m.FullName),
		m.Email,
		fieldOrEmpty(m.CustomerCode),
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Detail returns the full POS projection for an exact customerCode.
// Duplicate codes resolve to the store's first match.
func (u *CustomerUseCase) Detail(ctx context.Context, customerCode string) (*model.CustomerDetail, error) {
	if customerCode == "" {
		return nil, domainErrors.ErrMissingParameter
	}

	member, err := u.members.FindByCustomerCode(ctx, customerCode)
	if err != nil {
		return nil, err
	}

	detail := member.ToDetail()
	return &detail, nil
}

func fieldOrEmpty(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}
