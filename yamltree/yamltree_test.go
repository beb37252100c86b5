package yamltree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/textgraft/graft"
	"github.com/textgraft/graft/tree"
)

const fixture = `
kind: root
children:
  - kind: text
    text: "Hello "
  - kind: p
    children:
      - kind: text
        text: "brave "
      - kind: em
        children:
          - kind: text
            text: "new "
  - kind: text
    text: world.
`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatal(err)
	}
	d := graft.New(root, graft.WithEditor(tree.MemEditor{}))
	if got := d.Text(); got != "Hello brave new world." {
		t.Errorf("got %q", got)
	}
	a, ok := d.AddressForText("new")
	if !ok || a.String() != "1.1.0" {
		t.Errorf("got (%v, %v)", a, ok)
	}
}

type parseErrTest struct {
	name string
	in   string
}

var parseErrTests = []parseErrTest{
	{name: "bad yaml", in: ": ["},
	{name: "missing kind", in: "text: hi"},
	{name: "text with children", in: "kind: text\nchildren:\n  - kind: text\n    text: x"},
	{name: "nested missing kind", in: "kind: root\nchildren:\n  - text: hi"},
}

func TestParseErrs(t *testing.T) {
	for i := range parseErrTests {
		tc := &parseErrTests[i]
		if _, err := Parse([]byte(tc.in)); err == nil {
			t.Errorf("%s: no error", tc.name)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	root, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, root, tree.TextKind); err != nil {
		t.Fatal(err)
	}
	again, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, buf.String())
	}
	a := graft.BuildMapping(root, tree.TextKind)
	b := graft.BuildMapping(again, tree.TextKind)
	if a.Text() != b.Text() {
		t.Errorf("round trip changed text: %q vs %q", a.Text(), b.Text())
	}
	if len(a) != len(b) {
		t.Fatalf("round trip changed shape: %d vs %d entries", len(a), len(b))
	}
	for i := range a {
		if !a[i].Addr.Equal(b[i].Addr) {
			t.Errorf("entry %d address %v vs %v", i, a[i].Addr, b[i].Addr)
		}
	}
}

func TestParseReader(t *testing.T) {
	root, err := ParseReader(strings.NewReader("kind: text\ntext: just text"))
	if err != nil {
		t.Fatal(err)
	}
	if root.Text() != "just text" {
		t.Errorf("got %q", root.Text())
	}
}
