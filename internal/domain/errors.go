package domain

import "errors"

var (
	// ErrNotFound covers both a missing record and a record owned by another
	// user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrInvalidType   = errors.New("type must be income or expense")
	ErrInvalidAmount = errors.New("amount must be a non-negative number")
)
