package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/domain/repository"
	pkgAuth "github.com/uubo/memberhub/internal/pkg/auth"
)

// minPasswordLength mirrors the registration form rule.
const minPasswordLength = 6

// AccountUseCase handles member lifecycle and token management.
type AccountUseCase struct {
	members repository.MemberRepository
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(members repository.MemberRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AccountUseCase {
	return &AccountUseCase{members: members, hasher: hasher, tokens: strategy}
}

// Register creates a new member with email/password and returns auth token.
func (u *AccountUseCase) Register(ctx context.Context, email, password, fullName string) (*model.Member, string, error) {
	email = normalizeEmail(email)
	if !validEmail(email) || len(password) < minPasswordLength {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	member := &model.Member{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if name := strings.TrimSpace(fullName); name != "" {
		member.FullName = &name
	}

	member, err = u.members.Create(ctx, member)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(member.ID)
	if err != nil {
		return nil, "", err
	}

	return member, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AccountUseCase) Authenticate(ctx context.Context, email, password string) (*model.Member, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	member, err := u.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(member.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(member.ID)
	if err != nil {
		return nil, "", err
	}

	return member, token, nil
}

// ParseToken extracts member ID from provided token.
func (u *AccountUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches member by identifier.
func (u *AccountUseCase) GetByID(ctx context.Context, id string) (*model.Member, error) {
	return u.members.GetByID(ctx, id)
}

// UpdateProfile merges the member-editable fields into the stored record.
// Loyalty and POS fields are never touched through this path.
func (u *AccountUseCase) UpdateProfile(ctx context.Context, id string, patch model.ProfilePatch) error {
	return u.members.MergeProfile(ctx, id, patch)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
