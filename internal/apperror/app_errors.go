package apperror

import "errors"

var (
	ErrSessionClosed      = errors.New("session is closed")
	ErrSessionUnavailable = errors.New("session is unavailable")
	ErrUnknownAction      = errors.New("unknown action")
	ErrMalformedMessage   = errors.New("malformed message")
	ErrMalformedBoard     = errors.New("malformed board")
	ErrBadSnapshot        = errors.New("bad snapshot response")
)
