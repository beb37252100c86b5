// Package span locates occurrences of a literal search string in
// text.
//
// In word mode an occurrence only counts when it sits on a word
// boundary: start-of-text or one boundary character before it, and
// end-of-text or one boundary character after it. The adjacent
// boundary characters are consumed into the span, so a span knows the
// punctuation it displaced. Scanning is left to right and
// non-overlapping.
package span

import (
	"regexp"
	"strings"

	"github.com/textgraft/graft/debug"
)

// boundaryClass is the word-delimiter set: sentence punctuation,
// quotes, hyphen, comma and whitespace.
const boundaryClass = `[-.!?,'"\s]`

// Opts configures a scan.
type Opts struct {
	// Word restricts matches to word boundaries and consumes one
	// adjacent boundary character on each side where present.
	Word bool

	// FoldCase matches case-insensitively, with RE2 Unicode simple
	// case folding.
	FoldCase bool
}

// Span is one located occurrence. [Start,End) is the full span
// including consumed boundary characters; [CoreStart,CoreEnd) is the
// literal occurrence itself. Without word mode the two ranges are
// equal.
type Span struct {
	Start, End         int
	CoreStart, CoreEnd int
}

// Lead returns the boundary character consumed before the occurrence,
// "" when it started at a text boundary.
func (s Span) Lead(text string) string { return text[s.Start:s.CoreStart] }

// Trail returns the boundary character consumed after the occurrence,
// "" when it ended at a text boundary.
func (s Span) Trail(text string) string { return text[s.CoreEnd:s.End] }

// Pattern builds the scan pattern for search under opts. All regexp
// metacharacters in search are escaped.
func Pattern(search string, opts Opts) *regexp.Regexp {
	var b strings.Builder
	if opts.FoldCase {
		b.WriteString("(?i)")
	}
	if opts.Word {
		b.WriteString(`(^|` + boundaryClass + `)`)
		b.WriteString(regexp.QuoteMeta(search))
		b.WriteString(`(` + boundaryClass + `|$)`)
	} else {
		b.WriteString(regexp.QuoteMeta(search))
	}
	return regexp.MustCompile(b.String())
}

// Scan returns all occurrences of search in text, in order. An empty
// search or no occurrence yields nil.
func Scan(text, search string, opts Opts) []Span {
	if search == "" {
		return nil
	}
	re := Pattern(search, opts)
	var res []Span
	if opts.Word {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			res = append(res, Span{Start: m[0], End: m[1], CoreStart: m[3], CoreEnd: m[4]})
		}
	} else {
		for _, m := range re.FindAllStringIndex(text, -1) {
			res = append(res, Span{Start: m[0], End: m[1], CoreStart: m[0], CoreEnd: m[1]})
		}
	}
	if debug.Find() {
		debug.Logf("span: %d occurrence(s) of %q in %q\n", len(res), search, text)
	}
	return res
}
