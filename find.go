package graft

import (
	"regexp"
	"strings"

	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/debug"
)

// findPattern builds the lookup pattern: the query with all regexp
// metacharacters escaped, wrapped in \b word anchors when
// word-preserving and case-folded when not case-sensitive.
func findPattern(query string, cfg FindConfig) *regexp.Regexp {
	var b strings.Builder
	if !cfg.CaseSensitive {
		b.WriteString("(?i)")
	}
	if cfg.PreserveWord {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(query))
	if cfg.PreserveWord {
		b.WriteString(`\b`)
	}
	return regexp.MustCompile(b.String())
}

// FindEntries filters m to the entries whose text contains query,
// preserving mapping order. No match is a nil result, not an error.
func FindEntries(m Mapping, query string, opts ...FindOpt) []Entry {
	cfg := newFindConfig(opts)
	re := findPattern(query, cfg)
	var res []Entry
	for _, e := range m {
		if re.MatchString(e.Text) {
			res = append(res, e)
		}
	}
	if debug.Find() {
		debug.Logf("graft: %d entries match %q\n", len(res), query)
	}
	return res
}

// AddressForText returns the address of the first entry containing
// query.
func AddressForText(m Mapping, query string, opts ...FindOpt) (addr.Address, bool) {
	es := FindEntries(m, query, opts...)
	if len(es) == 0 {
		return nil, false
	}
	return es[0].Addr, true
}

// AddressesForText returns the addresses of all entries containing
// query, in mapping order.
func AddressesForText(m Mapping, query string, opts ...FindOpt) []addr.Address {
	es := FindEntries(m, query, opts...)
	if len(es) == 0 {
		return nil
	}
	res := make([]addr.Address, len(es))
	for i, e := range es {
		res[i] = e.Addr
	}
	return res
}

// TextByAddress returns the text of the entry at a.
func TextByAddress(m Mapping, a addr.Address) (string, bool) {
	for _, e := range m {
		if e.Addr.Equal(a) {
			return e.Text, true
		}
	}
	return "", false
}

// IsInSingleNode reports whether query occurs in exactly one text
// leaf.
func IsInSingleNode(m Mapping, query string, opts ...FindOpt) bool {
	return len(FindEntries(m, query, opts...)) == 1
}
