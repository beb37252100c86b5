package tree

import "fmt"

// TextKind is the kind tag Mem uses for text leaves.
const TextKind = "text"

// Mem is an in-memory node. It maintains parent backlinks so that
// MemEditor can substitute nodes in place.
type Mem struct {
	kind   string
	text   string
	kids   []*Mem
	parent *Mem
}

// NewMem returns a container node of the given kind with the given
// children.
func NewMem(kind string, kids ...*Mem) *Mem {
	m := &Mem{kind: kind}
	return m.Append(kids...)
}

// MemText returns a text leaf carrying s.
func MemText(s string) *Mem {
	return &Mem{kind: TextKind, text: s}
}

// Append adds kids to m's child list and returns m.
func (m *Mem) Append(kids ...*Mem) *Mem {
	for _, k := range kids {
		k.parent = m
		m.kids = append(m.kids, k)
	}
	return m
}

func (m *Mem) Kind() string { return m.kind }

func (m *Mem) Text() string { return m.text }

func (m *Mem) Children() []Node {
	if len(m.kids) == 0 {
		return nil
	}
	res := make([]Node, len(m.kids))
	for i, k := range m.kids {
		res[i] = k
	}
	return res
}

// Parent returns m's parent, nil for the root.
func (m *Mem) Parent() *Mem { return m.parent }

// MemEditor edits Mem trees.
type MemEditor struct {
	// Kind tags nodes made by NewText. TextKind when empty.
	Kind string
}

func (e MemEditor) NewText(s string) Node {
	kind := e.Kind
	if kind == "" {
		kind = TextKind
	}
	return &Mem{kind: kind, text: s}
}

func (e MemEditor) ReplaceNode(old Node, with []Node) error {
	m, ok := old.(*Mem)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, old)
	}
	p := m.parent
	if p == nil {
		return ErrNoParent
	}
	sub := make([]*Mem, len(with))
	for i, w := range with {
		wm, ok := w.(*Mem)
		if !ok {
			return fmt.Errorf("%w: %T", ErrForeignNode, w)
		}
		sub[i] = wm
	}
	at := -1
	for i, k := range p.kids {
		if k == m {
			at = i
			break
		}
	}
	if at == -1 {
		return fmt.Errorf("%w: not in parent child list", ErrForeignNode)
	}
	kids := make([]*Mem, 0, len(p.kids)-1+len(sub))
	kids = append(kids, p.kids[:at]...)
	for _, wm := range sub {
		wm.parent = p
		kids = append(kids, wm)
	}
	kids = append(kids, p.kids[at+1:]...)
	p.kids = kids
	m.parent = nil
	return nil
}
