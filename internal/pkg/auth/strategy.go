package auth

import "time"

type Strategy interface {
	IssueToken(memberID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
