package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/textgraft/graft/render"
)

type MainConfig struct {
	H     bool `cli:"name=h aliases=html desc='do i/o in html'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='print with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colorsFor follows the terminal: explicit -color wins, otherwise
// color only when writing to a tty.
func (cfg *MainConfig) colorsFor(w io.Writer) *render.Colors {
	if cfg.Color {
		return render.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return render.NewColors()
	}
	return nil
}

type TextConfig struct {
	*MainConfig

	Text *cli.Command
}

type MapConfig struct {
	*MainConfig

	Map *cli.Command
}

type FindConfig struct {
	*MainConfig

	W bool `cli:"name=w desc='whole-word match'"`
	I bool `cli:"name=i desc='case-insensitive match'"`

	Find *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ReplaceConfig struct {
	*MainConfig

	NoWord bool `cli:"name=W desc='do not require word boundaries'"`
	I      bool `cli:"name=i desc='case-insensitive match'"`
	Diff   bool `cli:"name=diff desc='print a text diff to stderr'"`

	At     string
	N      int
	Select string

	Replace *cli.Command
}
