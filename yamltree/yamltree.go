// Package yamltree loads and stores node trees in a small YAML
// schema, one object per node:
//
//	kind: root
//	children:
//	  - kind: text
//	    text: "Hello "
//	  - kind: em
//	    children:
//	      - kind: text
//	        text: world
//
// It exists for headless fixtures and for tooling that wants a
// synthetic tree without a live host document.
package yamltree

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/textgraft/graft/tree"
)

type yamlNode struct {
	Kind     string      `yaml:"kind"`
	Text     string      `yaml:"text,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

// Parse decodes a YAML tree into an in-memory node tree.
func Parse(data []byte) (*tree.Mem, error) {
	var yn yamlNode
	if err := yaml.Unmarshal(data, &yn); err != nil {
		return nil, fmt.Errorf("error decoding yaml tree: %w", err)
	}
	return fromYAML(&yn)
}

// ParseReader decodes a YAML tree from r.
func ParseReader(r io.Reader) (*tree.Mem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading yaml tree: %w", err)
	}
	return Parse(data)
}

func fromYAML(yn *yamlNode) (*tree.Mem, error) {
	if yn.Kind == "" {
		return nil, fmt.Errorf("error decoding yaml tree: node with no kind")
	}
	if yn.Kind == tree.TextKind {
		if len(yn.Children) != 0 {
			return nil, fmt.Errorf("error decoding yaml tree: text node with children")
		}
		return tree.MemText(yn.Text), nil
	}
	m := tree.NewMem(yn.Kind)
	for _, c := range yn.Children {
		k, err := fromYAML(c)
		if err != nil {
			return nil, err
		}
		m.Append(k)
	}
	return m, nil
}

// Encode writes any capability-set tree back out in the YAML schema.
// textKind names the kind tag marking text leaves in n's tree.
func Encode(w io.Writer, n tree.Node, textKind string) error {
	yn := toYAML(n, textKind)
	enc := yaml.NewEncoder(w, yaml.Indent(2))
	defer enc.Close()
	if err := enc.Encode(yn); err != nil {
		return fmt.Errorf("error encoding yaml tree: %w", err)
	}
	return nil
}

func toYAML(n tree.Node, textKind string) *yamlNode {
	yn := &yamlNode{Kind: n.Kind()}
	if n.Kind() == textKind {
		yn.Text = n.Text()
		return yn
	}
	for _, c := range n.Children() {
		yn.Children = append(yn.Children, toYAML(c, textKind))
	}
	return yn
}
