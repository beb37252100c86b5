package graft

import (
	"testing"

	"github.com/textgraft/graft/tree"
)

// testTree builds:
//
//	root
//	├── text "Hello "          0
//	├── p                      1
//	│   ├── text "brave "      1.0
//	│   └── em                 1.1
//	│       └── text "new "    1.1.0
//	├── div (empty)            2
//	└── text "world."          3
func testTree() *tree.Mem {
	return tree.NewMem("root",
		tree.MemText("Hello "),
		tree.NewMem("p",
			tree.MemText("brave "),
			tree.NewMem("em", tree.MemText("new ")),
		),
		tree.NewMem("div"),
		tree.MemText("world."),
	)
}

func TestBuildMappingOrder(t *testing.T) {
	m := BuildMapping(testTree(), tree.TextKind)
	want := []struct{ text, addr string }{
		{"Hello ", "0"},
		{"brave ", "1.0"},
		{"new ", "1.1.0"},
		{"world.", "3"},
	}
	if len(m) != len(want) {
		t.Fatalf("got %d entries, want %d", len(m), len(want))
	}
	for i, w := range want {
		if m[i].Text != w.text || m[i].Addr.String() != w.addr {
			t.Errorf("entry %d: (%q, %q), want (%q, %q)",
				i, m[i].Text, m[i].Addr, w.text, w.addr)
		}
	}
}

func TestBuildMappingDeterministic(t *testing.T) {
	root := testTree()
	a := BuildMapping(root, tree.TextKind)
	b := BuildMapping(root, tree.TextKind)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Text != b[i].Text || !a[i].Addr.Equal(b[i].Addr) {
			t.Errorf("entry %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMappingText(t *testing.T) {
	m := BuildMapping(testTree(), tree.TextKind)
	if got := m.Text(); got != "Hello brave new world." {
		t.Errorf("got %q", got)
	}
	var empty Mapping
	if empty.Text() != "" {
		t.Errorf("empty mapping text %q", empty.Text())
	}
}

func TestBuildMappingNilRoot(t *testing.T) {
	if m := BuildMapping(nil, tree.TextKind); m != nil {
		t.Errorf("got %v", m)
	}
}

func TestBuildMappingTextKind(t *testing.T) {
	root := tree.NewMem("root",
		tree.NewMem("span", tree.NewMem("t")),
	)
	// no "text"-kind leaves at all
	if m := BuildMapping(root, tree.TextKind); len(m) != 0 {
		t.Errorf("got %d entries", len(m))
	}
}
