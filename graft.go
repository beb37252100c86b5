// Package graft locates runs of text inside a node tree and performs
// surgical replacement of that text with caller-supplied nodes,
// leaving adjacent text and the rest of the tree untouched.
//
// A [Doc] owns a mapping from text content to tree addresses, built
// by a depth-first walk of the host tree's text leaves. Lookups run
// against the mapping; [Doc.ReplaceText] mutates the host tree
// through its [tree.Editor] and leaves the mapping stale until the
// caller invokes [Doc.Remap]. Staleness is never repaired
// automatically.
package graft

import (
	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/debug"
	"github.com/textgraft/graft/tree"
)

// Doc mediates between a host tree and the mapping derived from it.
type Doc struct {
	cfg     Config
	root    tree.Node
	mapping Mapping

	// treeGen counts successful replacements; mapGen is the treeGen
	// the mapping was last built at. They differ while the mapping
	// is stale.
	treeGen int
	mapGen  int
}

// New builds a Doc over root, mapping it eagerly.
func New(root tree.Node, opts ...Option) *Doc {
	d := &Doc{cfg: newConfig(opts), root: root}
	d.mapping = BuildMapping(root, d.cfg.TextKind)
	return d
}

// NewFromMapping builds a headless Doc from a precomputed mapping,
// with no live tree behind it. Address resolution and replacement
// are unavailable; the lookup operations work as usual.
func NewFromMapping(m Mapping, opts ...Option) *Doc {
	return &Doc{cfg: newConfig(opts), mapping: m}
}

// Root returns the host tree root, nil for headless docs.
func (d *Doc) Root() tree.Node { return d.root }

// Editor returns the configured editor, nil if none.
func (d *Doc) Editor() tree.Editor { return d.cfg.Editor }

// Mapping returns the current mapping.
func (d *Doc) Mapping() Mapping {
	d.checkStale("Mapping")
	return d.mapping
}

// Text returns the tree's visible text: all mapping entries
// concatenated in order.
func (d *Doc) Text() string {
	d.checkStale("Text")
	return d.mapping.Text()
}

// AddressForText returns the address of the first text leaf
// containing text.
func (d *Doc) AddressForText(text string, opts ...FindOpt) (addr.Address, bool) {
	d.checkStale("AddressForText")
	return AddressForText(d.mapping, text, opts...)
}

// AddressesForText returns the addresses of all text leaves
// containing text, in reading order.
func (d *Doc) AddressesForText(text string, opts ...FindOpt) []addr.Address {
	d.checkStale("AddressesForText")
	return AddressesForText(d.mapping, text, opts...)
}

// TextByAddress returns the mapped text at a.
func (d *Doc) TextByAddress(a addr.Address) (string, bool) {
	d.checkStale("TextByAddress")
	return TextByAddress(d.mapping, a)
}

// IsInSingleNode reports whether text occurs in exactly one leaf.
func (d *Doc) IsInSingleNode(text string, opts ...FindOpt) bool {
	d.checkStale("IsInSingleNode")
	return IsInSingleNode(d.mapping, text, opts...)
}

// NodeByAddress resolves a against the live tree.
func (d *Doc) NodeByAddress(a addr.Address) (tree.Node, bool) {
	if d.root == nil {
		return nil, false
	}
	return addr.Resolve(d.root, a)
}

// TextNode returns the first live text leaf containing text.
func (d *Doc) TextNode(text string, opts ...FindOpt) (tree.Node, bool) {
	a, ok := d.AddressForText(text, opts...)
	if !ok {
		return nil, false
	}
	return d.NodeByAddress(a)
}

// ReplaceText replaces one occurrence of text with nodes. The target
// leaf is resolved by the ReplaceAt address when given, otherwise by
// the first mapping entry containing text under the same word and
// case options. After a successful replacement the mapping is stale
// until Remap.
func (d *Doc) ReplaceText(text string, nodes []tree.Node, opts ...ReplaceOpt) error {
	if d.cfg.Editor == nil {
		return ErrNoEditor
	}
	cfg := newReplaceConfig(opts)
	var target tree.Node
	if cfg.At != nil {
		n, ok := d.NodeByAddress(cfg.At)
		if !ok {
			return &NotFoundError{Search: text}
		}
		target = n
	} else {
		n, ok := d.TextNode(text,
			FindCaseSensitive(cfg.CaseSensitive),
			FindPreserveWord(cfg.PreserveWord))
		if !ok {
			return &NotFoundError{Search: text}
		}
		target = n
	}
	if target.Kind() != d.cfg.TextKind {
		return ErrNotText
	}
	if err := Replace(d.cfg.Editor, target, text, nodes, opts...); err != nil {
		return err
	}
	d.treeGen++
	return nil
}

// Remap resynchronizes the mapping: it adopts m verbatim when
// non-nil, otherwise rebuilds from the root. Required after every
// mutating ReplaceText; nothing remaps implicitly.
func (d *Doc) Remap(m Mapping) *Doc {
	switch {
	case m != nil:
		d.mapping = m
	case d.root != nil:
		d.mapping = BuildMapping(d.root, d.cfg.TextKind)
	}
	d.mapGen = d.treeGen
	return d
}

// NewText builds a detached text leaf via the configured editor, a
// convenience for assembling replacement node lists.
func (d *Doc) NewText(s string) tree.Node {
	if d.cfg.Editor == nil {
		return nil
	}
	return d.cfg.Editor.NewText(s)
}

func (d *Doc) checkStale(op string) {
	if d.mapGen != d.treeGen && debug.Stale() {
		debug.Logf("graft: %s through stale mapping (tree gen %d, mapping gen %d)\n",
			op, d.treeGen, d.mapGen)
	}
}
