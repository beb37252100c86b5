package graft

import (
	"fmt"

	"github.com/textgraft/graft/debug"
	"github.com/textgraft/graft/span"
	"github.com/textgraft/graft/tree"
)

// Replace substitutes one occurrence of searchText inside target with
// nodes, splicing the surrounding text back in as new text leaves.
//
// The occurrence is selected by cfg.Index among all occurrences in
// the target's text, scanned left to right. The text before the
// occurrence and the text after it, including any boundary
// punctuation consumed by word-preserving matching and any other
// occurrences of the same search text, are preserved verbatim; empty
// surrounding segments produce no node at all. The target is then
// replaced in its parent with the resulting node list in one editor
// call. On any failure the tree is untouched.
func Replace(ed tree.Editor, target tree.Node, searchText string, nodes []tree.Node, opts ...ReplaceOpt) error {
	if ed == nil {
		return ErrNoEditor
	}
	cfg := newReplaceConfig(opts)
	text := target.Text()
	spans := span.Scan(text, searchText, span.Opts{
		Word:     cfg.PreserveWord,
		FoldCase: !cfg.CaseSensitive,
	})
	if len(spans) == 0 {
		return &NotFoundError{Search: searchText, NodeText: text}
	}
	if cfg.Index < 0 || cfg.Index >= len(spans) {
		return fmt.Errorf("%w: index %d with %d occurrence(s) of %q",
			ErrReplaceIndex, cfg.Index, len(spans), searchText)
	}
	sel := spans[cfg.Index]
	prefix, suffix := text[:sel.CoreStart], text[sel.CoreEnd:]
	out := make([]tree.Node, 0, len(nodes)+2)
	if prefix != "" {
		out = append(out, ed.NewText(prefix))
	}
	out = append(out, nodes...)
	if suffix != "" {
		out = append(out, ed.NewText(suffix))
	}
	if debug.Replace() {
		debug.Logf("graft: replacing occurrence %d of %q, prefix %q suffix %q\n",
			cfg.Index, searchText, prefix, suffix)
	}
	return ed.ReplaceNode(target, out)
}
