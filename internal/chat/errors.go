package chat

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRateLimited     = errors.New("too many messages, slow down")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrInvalidSession  = errors.New("invalid session id")
)
