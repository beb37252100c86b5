package graft

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a replace whose search text does not occur
	// in the resolved target node. Lookup misses are not errors; see
	// the ok-bool returns on the query operations.
	ErrNotFound = errors.New("text not found")

	// ErrReplaceIndex reports a replacement index with no matching
	// occurrence. Indexes are not clamped.
	ErrReplaceIndex = errors.New("replacement index out of range")

	ErrNoEditor = errors.New("no editor configured")
	ErrNotText  = errors.New("node is not a text leaf")
)

// NotFoundError carries the search text and the text of the node that
// was searched. It unwraps to ErrNotFound.
type NotFoundError struct {
	Search   string
	NodeText string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("text not found: %q in node text %q", e.Search, e.NodeText)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
