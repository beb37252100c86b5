package graft

import (
	"errors"
	"testing"

	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/tree"
)

func TestDocText(t *testing.T) {
	d := New(testTree())
	if got := d.Text(); got != "Hello brave new world." {
		t.Errorf("got %q", got)
	}
}

func TestDocHeadless(t *testing.T) {
	m := Mapping{
		{Text: "Hello ", Addr: addr.Address{0}},
		{Text: "world.", Addr: addr.Address{1}},
	}
	d := NewFromMapping(m)
	if got := d.Text(); got != "Hello world." {
		t.Errorf("got %q", got)
	}
	a, ok := d.AddressForText("world")
	if !ok || a.String() != "1" {
		t.Errorf("got (%v, %v)", a, ok)
	}
	if _, ok := d.NodeByAddress(a); ok {
		t.Error("headless doc resolved a node")
	}
	if _, ok := d.TextNode("world"); ok {
		t.Error("headless doc returned a node")
	}
	if err := d.ReplaceText("world", nil); !errors.Is(err, ErrNoEditor) {
		t.Errorf("got %v", err)
	}
}

func TestDocRemapAdopt(t *testing.T) {
	d := New(testTree())
	m := Mapping{{Text: "synthetic", Addr: addr.Address{7}}}
	d.Remap(m)
	if got := d.Text(); got != "synthetic" {
		t.Errorf("adopted mapping not used: %q", got)
	}
	// rebuild from root wins back the real tree
	d.Remap(nil)
	if got := d.Text(); got != "Hello brave new world." {
		t.Errorf("got %q", got)
	}
}

func TestDocNodeByAddress(t *testing.T) {
	d := New(testTree())
	n, ok := d.NodeByAddress(addr.Address{1, 1, 0})
	if !ok || n.Text() != "new " {
		t.Fatalf("got (%v, %v)", n, ok)
	}
	if _, ok := d.NodeByAddress(addr.Address{9}); ok {
		t.Error("resolved bogus address")
	}
}

func TestDocTextNode(t *testing.T) {
	d := New(testTree())
	n, ok := d.TextNode("brave")
	if !ok || n.Text() != "brave " {
		t.Fatalf("got (%v, %v)", n, ok)
	}
	if _, ok := d.TextNode("absent"); ok {
		t.Error("found absent text")
	}
}

func TestDocReplaceAcrossLeaves(t *testing.T) {
	root := testTree()
	d := New(root, WithEditor(tree.MemEditor{}))
	if err := d.ReplaceText("new", []tree.Node{d.NewText("old")}); err != nil {
		t.Fatal(err)
	}
	d.Remap(nil)
	if got := d.Text(); got != "Hello brave old world." {
		t.Errorf("got %q", got)
	}
	// only the em leaf changed shape; other addresses survive
	if _, ok := d.AddressForText("brave"); !ok {
		t.Error("brave lost after unrelated replace")
	}
}

func TestDocStaleUntilRemap(t *testing.T) {
	d := textDoc("alpha beta gamma")
	if err := d.ReplaceText("beta", []tree.Node{d.NewText("BETA")}); err != nil {
		t.Fatal(err)
	}
	// nothing remaps implicitly: reads still see the old snapshot
	if got := d.Text(); got != "alpha beta gamma" {
		t.Errorf("mapping refreshed implicitly: %q", got)
	}
	d.Remap(nil)
	if got := d.Text(); got != "alpha BETA gamma" {
		t.Errorf("got %q", got)
	}
}

func TestDocReplaceAtNonText(t *testing.T) {
	d := New(testTree(), WithEditor(tree.MemEditor{}))
	err := d.ReplaceText("anything", nil, ReplaceAt(addr.Address{1}))
	if !errors.Is(err, ErrNotText) {
		t.Errorf("got %v", err)
	}
}

// customNode is a host tree with its own kind vocabulary.
type customNode struct {
	kind, text string
	kids       []tree.Node
}

func (c *customNode) Kind() string          { return c.kind }
func (c *customNode) Text() string          { return c.text }
func (c *customNode) Children() []tree.Node { return c.kids }

func TestDocCustomTextKind(t *testing.T) {
	root := &customNode{kind: "doc", kids: []tree.Node{
		&customNode{kind: "string", text: "abc"},
		&customNode{kind: "box", kids: []tree.Node{
			&customNode{kind: "string", text: "def"},
		}},
	}}
	d := New(root, WithTextKind("string"))
	if got := d.Text(); got != "abcdef" {
		t.Errorf("got %q", got)
	}
	a, ok := d.AddressForText("def")
	if !ok || a.String() != "1.0" {
		t.Errorf("got (%v, %v)", a, ok)
	}
}
