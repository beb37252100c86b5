package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/textgraft/graft"
	"github.com/textgraft/graft/htmltree"
	"github.com/textgraft/graft/tree"
	"github.com/textgraft/graft/yamltree"
)

const (
	htmlFormat = "html"
	yamlFormat = "yaml"
)

// docFile is one loaded document plus what is needed to write it
// back out.
type docFile struct {
	doc    *graft.Doc
	root   tree.Node
	format string
}

func (cfg *MainConfig) formatFor(path string) string {
	switch {
	case cfg.H:
		return htmlFormat
	case cfg.Y:
		return yamlFormat
	}
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return yamlFormat
	case strings.HasSuffix(path, ".html"), strings.HasSuffix(path, ".htm"):
		return htmlFormat
	}
	return htmlFormat
}

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*docFile, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	format := cfg.formatFor(path)
	switch format {
	case yamlFormat:
		root, err := yamltree.ParseReader(r)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		return &docFile{
			doc:    graft.New(root, graft.WithEditor(tree.MemEditor{})),
			root:   root,
			format: format,
		}, nil
	default:
		root, err := htmltree.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		return &docFile{
			doc:    graft.New(root, graft.WithEditor(htmltree.Editor{})),
			root:   root,
			format: format,
		}, nil
	}
}

func writeDocFile(w io.Writer, df *docFile) error {
	switch df.format {
	case yamlFormat:
		return yamltree.Encode(w, df.root, tree.TextKind)
	default:
		if err := htmltree.Render(w, df.root.(htmltree.Node)); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
}

// eachDocFile runs f over the named files, or over stdin when none
// are given.
func eachDocFile(cfg *MainConfig, cc *cli.Context, args []string, f func(*docFile) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		df, err := getDocFile(cfg, cc, path)
		if err != nil {
			return err
		}
		if err := f(df); err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
	}
	return nil
}
