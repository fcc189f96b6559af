// Package common defines sentinel errors shared by the store, service and
// CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateKeyword = errors.New("duplicate keyword")

	// Validation errors.
	ErrEmptyName             = errors.New("snippet name is required")
	ErrConflictingVisibility = errors.New("--hide and --unhide cannot be used together")
	ErrInvalidVisibility     = errors.New("invalid visibility")

	// Configuration errors.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
