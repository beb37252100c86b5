// Package addr implements dot-separated child-index addresses into a
// node tree.
//
// An address is an ordered sequence of non-negative child indices,
// most-significant first, serialized as decimal integers joined by
// '.': "0.21.0" is root's child 0, then its child 21, then its child
// 0. Addresses are only meaningful against the tree shape they were
// computed from.
package addr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/textgraft/graft/tree"
)

// Address locates a node from the root by successive child indices.
// An address is never empty; the root itself has no address.
type Address []int

func (a Address) String() string {
	segs := make([]string, len(a))
	for i, x := range a {
		segs[i] = strconv.Itoa(x)
	}
	return strings.Join(segs, ".")
}

// Equal reports whether a and b name the same location.
func (a Address) Equal(b Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Child returns a extended by one more index. The result is a fresh
// slice; a is not aliased.
func (a Address) Child(i int) Address {
	res := make(Address, len(a)+1)
	copy(res, a)
	res[len(a)] = i
	return res
}

// Parse parses the dot-joined form. Errors wrap ErrParse.
func Parse(s string) (Address, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty address", ErrParse)
	}
	segs := strings.Split(s, ".")
	res := make(Address, len(segs))
	for i, seg := range segs {
		x, err := strconv.Atoi(seg)
		if err != nil || x < 0 {
			return nil, fmt.Errorf("%w: segment %q in %q", ErrParse, seg, s)
		}
		res[i] = x
	}
	return res, nil
}

// Resolve walks a from root, following each successive child index.
// It returns (nil, false) when any index is out of range; a miss is a
// value, not an error.
func Resolve(root tree.Node, a Address) (tree.Node, bool) {
	if root == nil || len(a) == 0 {
		return nil, false
	}
	n := root
	for _, i := range a {
		kids := n.Children()
		if i < 0 || i >= len(kids) {
			return nil, false
		}
		n = kids[i]
	}
	return n, true
}
