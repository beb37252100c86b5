// Package render writes a human-readable outline of a node tree,
// one node per line with its address, kind and text, optionally in
// color.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/tree"
)

// Colors maps outline parts to sprintf-style colorizers.
type Colors struct {
	Addr func(string, ...any) string
	Kind func(string, ...any) string
	Text func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Addr: color.RGB(196, 96, 16).SprintfFunc(),
		Kind: color.RGB(128, 168, 196).SprintfFunc(),
		Text: color.CyanString,
	}
}

type Config struct {
	Colors *Colors

	// TextKind marks text leaves; their payload is printed quoted.
	TextKind string
}

type Option func(*Config)

func WithColors(c *Colors) Option {
	return func(cfg *Config) { cfg.Colors = c }
}

func WithTextKind(kind string) Option {
	return func(cfg *Config) { cfg.TextKind = kind }
}

// Outline writes the tree under root. The root line carries no
// address; each child line is indented by depth and prefixed with its
// address.
func Outline(w io.Writer, root tree.Node, opts ...Option) error {
	cfg := Config{TextKind: tree.TextKind}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := cfg.Colors
	if c == nil {
		c = plainColors()
	}
	if _, err := fmt.Fprintf(w, "%s\n", c.Kind("%s", root.Kind())); err != nil {
		return err
	}
	return outline(w, root, nil, 1, &cfg, c)
}

func outline(w io.Writer, n tree.Node, path addr.Address, depth int, cfg *Config, c *Colors) error {
	indent := strings.Repeat("  ", depth)
	for i, k := range n.Children() {
		sub := path.Child(i)
		var err error
		if k.Kind() == cfg.TextKind {
			_, err = fmt.Fprintf(w, "%s%s %s %s\n",
				indent, c.Addr("%s", sub), c.Kind("%s", k.Kind()), c.Text("%q", k.Text()))
		} else {
			_, err = fmt.Fprintf(w, "%s%s %s\n",
				indent, c.Addr("%s", sub), c.Kind("%s", k.Kind()))
		}
		if err != nil {
			return err
		}
		if k.Kind() != cfg.TextKind {
			if err := outline(w, k, sub, depth+1, cfg, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func plainColors() *Colors {
	plain := func(format string, args ...any) string {
		return fmt.Sprintf(format, args...)
	}
	return &Colors{Addr: plain, Kind: plain, Text: plain}
}
