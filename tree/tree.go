// Package tree defines the capability set the core needs from a host
// node tree: typed nodes with ordered, index-addressable children, a
// string payload on text leaves, and a single structural substitution
// primitive plus a text-node factory.
//
// The core never owns node lifetime. It reads through [Node] and
// mutates through [Editor], so any host tree representation can be
// plugged in; [Mem] is the in-memory implementation used for headless
// work and tests.
package tree

// Node is the read surface of a host tree node.
type Node interface {
	// Kind returns the node's type tag. Which tag marks text leaves
	// is configuration of the consumer, not a property of the tree.
	Kind() string

	// Children returns the node's children in order.
	Children() []Node

	// Text returns the string payload of a text leaf, "" otherwise.
	Text() string
}

// Editor is the mutation surface of a host tree.
type Editor interface {
	// ReplaceNode substitutes old, in its parent's child list, with
	// the given nodes in order. Untouched siblings keep their
	// relative order. Replacing a parentless node is an error.
	ReplaceNode(old Node, with []Node) error

	// NewText constructs a new detached text leaf carrying s.
	NewText(s string) Node
}
