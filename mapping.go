package graft

import (
	"strings"

	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/debug"
	"github.com/textgraft/graft/tree"
)

// Entry pairs one text leaf's payload with its address.
type Entry struct {
	Text string
	Addr addr.Address
}

// Mapping is the ordered list of all text leaves under a root, in
// depth-first pre-order, i.e. in reading order. A mapping is a
// snapshot: it is only valid against the tree shape it was built
// from.
type Mapping []Entry

// Text returns the concatenation of all entry texts in order: the
// tree's visible text with all structure stripped.
func (m Mapping) Text() string {
	var b strings.Builder
	for i := range m {
		b.WriteString(m[i].Text)
	}
	return b.String()
}

// BuildMapping walks root's children in index order. A child whose
// kind is textKind emits one entry; any other child with children is
// recursed into; childless containers emit nothing. The root itself
// never emits.
func BuildMapping(root tree.Node, textKind string) Mapping {
	var m Mapping
	if root != nil {
		m = mapNode(m, root, nil, textKind)
	}
	if debug.Map() {
		debug.Logf("graft: built mapping of %d entries\n", len(m))
	}
	return m
}

func mapNode(m Mapping, n tree.Node, path addr.Address, textKind string) Mapping {
	for i, c := range n.Children() {
		if c.Kind() == textKind {
			m = append(m, Entry{Text: c.Text(), Addr: path.Child(i)})
			continue
		}
		if len(c.Children()) > 0 {
			m = mapNode(m, c, path.Child(i), textKind)
		}
	}
	return m
}
