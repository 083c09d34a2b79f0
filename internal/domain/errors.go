package domain

import "errors"

// Error kinds surfaced by every engine operation. Callers match with
// errors.Is; the HTTP layer maps them to status codes.
var (
	ErrNotFound     = errors.New("entity not found")
	ErrForbidden    = errors.New("caller not allowed to perform this action")
	ErrInvalidState = errors.New("action not permitted from current status")
	ErrConflict     = errors.New("conflicting concurrent change")
	ErrInternal     = errors.New("internal storage failure")
)
