package graft

import (
	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/tree"
)

// Config configures a Doc.
type Config struct {
	// TextKind is the kind tag marking text leaves in the host tree.
	TextKind string

	// Editor supplies the host tree's mutation primitive and text
	// factory. Required for ReplaceText, optional for read-only use.
	Editor tree.Editor
}

type Option func(*Config)

func WithTextKind(kind string) Option {
	return func(c *Config) { c.TextKind = kind }
}

func WithEditor(ed tree.Editor) Option {
	return func(c *Config) { c.Editor = ed }
}

func newConfig(opts []Option) Config {
	cfg := Config{TextKind: tree.TextKind}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// FindConfig configures the lookup operations.
type FindConfig struct {
	CaseSensitive bool
	PreserveWord  bool
}

type FindOpt func(*FindConfig)

func FindCaseSensitive(v bool) FindOpt {
	return func(c *FindConfig) { c.CaseSensitive = v }
}

func FindPreserveWord(v bool) FindOpt {
	return func(c *FindConfig) { c.PreserveWord = v }
}

func newFindConfig(opts []FindOpt) FindConfig {
	cfg := FindConfig{CaseSensitive: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ReplaceConfig configures ReplaceText. Defaults: word-preserving,
// case-sensitive, first occurrence, target resolved by text lookup.
type ReplaceConfig struct {
	// At resolves the target node directly by address instead of by
	// text lookup.
	At addr.Address

	PreserveWord  bool
	CaseSensitive bool

	// Index selects among multiple occurrences within the target
	// node, 0-based in left-to-right order.
	Index int
}

type ReplaceOpt func(*ReplaceConfig)

func ReplaceAt(a addr.Address) ReplaceOpt {
	return func(c *ReplaceConfig) { c.At = a }
}

func ReplacePreserveWord(v bool) ReplaceOpt {
	return func(c *ReplaceConfig) { c.PreserveWord = v }
}

func ReplaceCaseSensitive(v bool) ReplaceOpt {
	return func(c *ReplaceConfig) { c.CaseSensitive = v }
}

func ReplaceIndex(i int) ReplaceOpt {
	return func(c *ReplaceConfig) { c.Index = i }
}

func newReplaceConfig(opts []ReplaceOpt) ReplaceConfig {
	cfg := ReplaceConfig{PreserveWord: true, CaseSensitive: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
