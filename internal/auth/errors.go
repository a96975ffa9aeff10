package auth

import "errors"

var (
	ErrNotFound           = errors.New("auth: not found")
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrRateLimited        = errors.New("auth: too many login attempts")
)
