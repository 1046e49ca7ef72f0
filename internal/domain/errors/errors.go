package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrForbidden          = errors.New("forbidden")
)
