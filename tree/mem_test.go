package tree

import (
	"errors"
	"testing"
)

func collectText(n Node) string {
	res := ""
	for _, c := range n.Children() {
		if c.Kind() == TextKind {
			res += c.Text()
			continue
		}
		res += collectText(c)
	}
	return res
}

func TestMemChildren(t *testing.T) {
	root := NewMem("root",
		MemText("a"),
		NewMem("p", MemText("b"), MemText("c")),
	)
	if got := collectText(root); got != "abc" {
		t.Errorf("got %q want %q", got, "abc")
	}
	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children", len(kids))
	}
	if kids[0].Kind() != TextKind || kids[1].Kind() != "p" {
		t.Errorf("unexpected kinds %q %q", kids[0].Kind(), kids[1].Kind())
	}
}

func TestMemReplaceNode(t *testing.T) {
	mid := MemText("b")
	root := NewMem("root", MemText("a"), mid, MemText("c"))
	ed := MemEditor{}
	err := ed.ReplaceNode(mid, []Node{ed.NewText("x"), ed.NewText("y")})
	if err != nil {
		t.Fatal(err)
	}
	if got := collectText(root); got != "axyc" {
		t.Errorf("got %q want %q", got, "axyc")
	}
	if mid.Parent() != nil {
		t.Errorf("replaced node still has a parent")
	}
}

func TestMemReplaceNodeEmpty(t *testing.T) {
	mid := MemText("b")
	root := NewMem("root", MemText("a"), mid)
	if err := (MemEditor{}).ReplaceNode(mid, nil); err != nil {
		t.Fatal(err)
	}
	if got := collectText(root); got != "a" {
		t.Errorf("got %q want %q", got, "a")
	}
}

func TestMemReplaceErrs(t *testing.T) {
	ed := MemEditor{}
	root := NewMem("root", MemText("a"))
	if err := ed.ReplaceNode(root, nil); !errors.Is(err, ErrNoParent) {
		t.Errorf("got %v want ErrNoParent", err)
	}
	detached := MemText("d")
	if err := ed.ReplaceNode(detached, nil); !errors.Is(err, ErrNoParent) {
		t.Errorf("got %v want ErrNoParent", err)
	}
}

func TestMemEditorKind(t *testing.T) {
	ed := MemEditor{Kind: "txt"}
	n := ed.NewText("hi")
	if n.Kind() != "txt" || n.Text() != "hi" {
		t.Errorf("got kind %q text %q", n.Kind(), n.Text())
	}
	if def := (MemEditor{}).NewText("x"); def.Kind() != TextKind {
		t.Errorf("got default kind %q", def.Kind())
	}
}
