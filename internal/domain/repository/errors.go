package repository

import "errors"

// Sentinel errors shared by every store backing. Callers branch with
// errors.Is and must not depend on driver error types.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)
