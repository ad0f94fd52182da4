package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("account has no dashboard access")
	ErrMediaDisabled      = errors.New("media uploads are not configured")
	ErrUnsupportedMedia   = errors.New("unsupported content type")
	ErrUnknownPage        = errors.New("unknown content page")
	ErrInvalidMonth       = errors.New("invalid calendar month")
	ErrAuditDisabled      = errors.New("activity log is not configured")
)
