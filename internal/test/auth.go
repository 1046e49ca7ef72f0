package test

import (
	"context"
	"strings"

	"github.com/uubo/memberhub/internal/domain/model"
)

// HasherStub implements auth.PasswordHasher with pluggable funcs.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hashed:" + password, nil
}

func (s *HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash == "hashed:"+password {
		return nil
	}
	return errComparisonFailed
}

type comparisonError struct{}

func (comparisonError) Error() string { return "hash mismatch" }

var errComparisonFailed = comparisonError{}

// StrategyStub implements auth.Strategy.
type StrategyStub struct {
	IssueTokenFn func(memberID string) (string, error)
	ParseTokenFn func(token string) (string, error)
	NameValue    string
}

func (s *StrategyStub) IssueToken(memberID string) (string, error) {
	if s.IssueTokenFn != nil {
		return s.IssueTokenFn(memberID)
	}
	return "token:" + memberID, nil
}

func (s *StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	// Invert the default IssueToken ("token:"+memberID); bare member IDs
	// pass through unchanged.
	return strings.TrimPrefix(token, "token:"), nil
}

func (s *StrategyStub) Name() string {
	if s.NameValue != "" {
		return s.NameValue
	}
	return "stub"
}

// TokenParserStub implements middleware.TokenParser.
type TokenParserStub struct {
	ParseTokenFn func(token string) (string, error)
}

func (s *TokenParserStub) ParseToken(token string) (string, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return token, nil
}

// MemberResolverStub implements middleware.MemberResolver.
type MemberResolverStub struct {
	MemberByIDFn func(ctx context.Context, id string) (*model.Member, error)
}

func (s *MemberResolverStub) MemberByID(ctx context.Context, id string) (*model.Member, error) {
	if s.MemberByIDFn != nil {
		return s.MemberByIDFn(ctx, id)
	}
	return &model.Member{ID: id}, nil
}
