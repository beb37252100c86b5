package render

import (
	"bytes"
	"testing"

	"github.com/textgraft/graft/tree"
)

func TestOutline(t *testing.T) {
	root := tree.NewMem("root",
		tree.MemText("Hello "),
		tree.NewMem("p",
			tree.MemText("world"),
		),
	)
	var buf bytes.Buffer
	if err := Outline(&buf, root); err != nil {
		t.Fatal(err)
	}
	want := "root\n" +
		"  0 text \"Hello \"\n" +
		"  1 p\n" +
		"    1.0 text \"world\"\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestOutlineCustomTextKind(t *testing.T) {
	root := tree.NewMem("root")
	var buf bytes.Buffer
	if err := Outline(&buf, root, WithTextKind("string")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "root\n" {
		t.Errorf("got %q", buf.String())
	}
}
