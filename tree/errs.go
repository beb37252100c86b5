package tree

import "errors"

var (
	ErrForeignNode = errors.New("node does not belong to this tree")
	ErrNoParent    = errors.New("node has no parent")
)
