package main

import (
	"github.com/scott-cotton/cli"

	"github.com/textgraft/graft/render"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var opts []render.Option
	if colors := cfg.colorsFor(cc.Out); colors != nil {
		opts = append(opts, render.WithColors(colors))
	}
	return eachDocFile(cfg.MainConfig, cc, args, func(df *docFile) error {
		return render.Outline(cc.Out, df.root, opts...)
	})
}
