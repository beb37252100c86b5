package main

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/textgraft/graft"
	"github.com/textgraft/graft/addr"
	"github.com/textgraft/graft/span"
	"github.com/textgraft/graft/tree"
)

func replace(cfg *ReplaceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replace.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: replace requires 2 arguments, the text and its replacement", cli.ErrUsage)
	}
	search, repl := args[0], args[1]
	return eachDocFile(cfg.MainConfig, cc, args[2:], func(df *docFile) error {
		opts := []graft.ReplaceOpt{
			graft.ReplacePreserveWord(!cfg.NoWord),
			graft.ReplaceCaseSensitive(!cfg.I),
			graft.ReplaceIndex(cfg.N),
		}
		var at addr.Address
		if cfg.At != "" {
			a, err := addr.Parse(cfg.At)
			if err != nil {
				return fmt.Errorf("%w: %v", cli.ErrUsage, err)
			}
			at = a
			opts = append(opts, graft.ReplaceAt(a))
		}
		if cfg.Select != "" {
			idx, err := selectIndex(cfg, df.doc, search, at)
			if err != nil {
				return err
			}
			opts = append(opts, graft.ReplaceIndex(idx))
		}
		before := df.doc.Text()
		node := df.doc.NewText(repl)
		if err := df.doc.ReplaceText(search, []tree.Node{node}, opts...); err != nil {
			return err
		}
		df.doc.Remap(nil)
		if cfg.Diff {
			printDiff(cfg, before, df.doc.Text())
		}
		return writeDocFile(cc.Out, df)
	})
}

// occEnv is the environment a -select expression sees for each
// occurrence in the target node.
type occEnv struct {
	Index int    `expr:"index"`
	Count int    `expr:"count"`
	Text  string `expr:"text"`
	Lead  string `expr:"lead"`
	Trail string `expr:"trail"`
}

func selectIndex(cfg *ReplaceConfig, d *graft.Doc, search string, at addr.Address) (int, error) {
	var (
		target tree.Node
		ok     bool
	)
	if at != nil {
		target, ok = d.NodeByAddress(at)
	} else {
		target, ok = d.TextNode(search,
			graft.FindPreserveWord(!cfg.NoWord),
			graft.FindCaseSensitive(!cfg.I))
	}
	if !ok {
		return 0, fmt.Errorf("no node containing %q", search)
	}
	text := target.Text()
	spans := span.Scan(text, search, span.Opts{Word: !cfg.NoWord, FoldCase: cfg.I})
	prog, err := expr.Compile(cfg.Select, expr.Env(occEnv{}), expr.AsBool())
	if err != nil {
		return 0, fmt.Errorf("%w: bad -select expression: %v", cli.ErrUsage, err)
	}
	for i, s := range spans {
		env := occEnv{
			Index: i,
			Count: len(spans),
			Text:  text[s.CoreStart:s.CoreEnd],
			Lead:  s.Lead(text),
			Trail: s.Trail(text),
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return 0, fmt.Errorf("error evaluating -select: %w", err)
		}
		if out.(bool) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no occurrence of %q satisfies %q", search, cfg.Select)
}

func printDiff(cfg *ReplaceConfig, before, after string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.colorsFor(os.Stderr) != nil {
		fmt.Fprintln(os.Stderr, dmp.DiffPrettyText(diffs))
		return
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(os.Stderr, "{+%s+}", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(os.Stderr, "[-%s-]", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(os.Stderr, d.Text)
		}
	}
	fmt.Fprintln(os.Stderr)
}
