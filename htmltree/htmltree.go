// Package htmltree adapts golang.org/x/net/html documents to the
// graft tree capability set, so text in live HTML can be located and
// replaced in place.
package htmltree

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/textgraft/graft/tree"
)

// TextKind is the kind tag text leaves carry under this adapter.
const TextKind = "text"

// Node wraps one *html.Node. Two Nodes are equal iff they wrap the
// same underlying node.
type Node struct {
	n *html.Node
}

// Wrap adapts n. Wrap(nil) wraps nothing and resolves no children.
func Wrap(n *html.Node) Node { return Node{n: n} }

// Unwrap returns the underlying node.
func (h Node) Unwrap() *html.Node { return h.n }

func (h Node) Kind() string {
	if h.n == nil {
		return ""
	}
	switch h.n.Type {
	case html.TextNode:
		return TextKind
	case html.ElementNode:
		return "element"
	case html.DocumentNode:
		return "document"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	case html.RawNode:
		return "raw"
	}
	return ""
}

func (h Node) Children() []tree.Node {
	if h.n == nil {
		return nil
	}
	var res []tree.Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		res = append(res, Node{n: c})
	}
	return res
}

func (h Node) Text() string {
	if h.n == nil || h.n.Type != html.TextNode {
		return ""
	}
	return h.n.Data
}

// Tag returns the element tag name, "" for non-elements.
func (h Node) Tag() string {
	if h.n == nil || h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

// Editor edits html trees through the adapter.
type Editor struct{}

func (Editor) NewText(s string) tree.Node {
	return Node{n: &html.Node{Type: html.TextNode, Data: s}}
}

func (Editor) ReplaceNode(old tree.Node, with []tree.Node) error {
	h, ok := old.(Node)
	if !ok || h.n == nil {
		return fmt.Errorf("%w: %T", tree.ErrForeignNode, old)
	}
	p := h.n.Parent
	if p == nil {
		return tree.ErrNoParent
	}
	for _, w := range with {
		wh, ok := w.(Node)
		if !ok || wh.n == nil {
			return fmt.Errorf("%w: %T", tree.ErrForeignNode, w)
		}
		if wh.n.Parent != nil {
			wh.n.Parent.RemoveChild(wh.n)
		}
		p.InsertBefore(wh.n, h.n)
	}
	p.RemoveChild(h.n)
	return nil
}

// NewElement returns a detached element node with the given tag.
func NewElement(tag string) Node {
	return Node{n: &html.Node{Type: html.ElementNode, Data: tag}}
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (Node, error) {
	n, err := html.Parse(r)
	if err != nil {
		return Node{}, fmt.Errorf("error parsing html: %w", err)
	}
	return Node{n: n}, nil
}

// Render writes n back out as HTML.
func Render(w io.Writer, n Node) error {
	if n.n == nil {
		return fmt.Errorf("%w: empty node", tree.ErrForeignNode)
	}
	return html.Render(w, n.n)
}
