package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("insufficient permissions")
	ErrNotResourceOwner = errors.New("not the resource owner")
	ErrInvalidSyncToken = errors.New("invalid sync token")
	ErrMissingSubject   = errors.New("token is missing a subject claim")
)
