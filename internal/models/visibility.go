package models

import (
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/common"
)

// Visibility is the requested change to a snippet's hidden flag on put.
type Visibility int

const (
	// VisibilityUnchanged keeps the stored flag on update and stores a
	// visible snippet on insert.
	VisibilityUnchanged Visibility = iota
	// VisibilityHidden marks the snippet as hidden.
	VisibilityHidden
	// VisibilityVisible clears the hidden flag.
	VisibilityVisible
)

// VisibilityFromFlags maps the --hide / --unhide pair onto a Visibility.
// Setting both is rejected with common.ErrConflictingVisibility.
func VisibilityFromFlags(hide, unhide bool) (Visibility, error) {
	switch {
	case hide && unhide:
		return VisibilityUnchanged, common.ErrConflictingVisibility
	case hide:
		return VisibilityHidden, nil
	case unhide:
		return VisibilityVisible, nil
	default:
		return VisibilityUnchanged, nil
	}
}

// Valid reports whether v is one of the declared values.
func (v Visibility) Valid() bool {
	return v >= VisibilityUnchanged && v <= VisibilityVisible
}

// HiddenOnInsert is the hidden value written when the keyword is new.
func (v Visibility) HiddenOnInsert() bool {
	return v == VisibilityHidden
}

// Overrides reports whether an update should replace the stored flag.
func (v Visibility) Overrides() bool {
	return v == VisibilityHidden || v == VisibilityVisible
}

func (v Visibility) String() string {
	switch v {
	case VisibilityUnchanged:
		return "unchanged"
	case VisibilityHidden:
		return "hidden"
	case VisibilityVisible:
		return "visible"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}
