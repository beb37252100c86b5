package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDocFile(cfg.MainConfig, cc, args, func(df *docFile) error {
		_, err := fmt.Fprintln(cc.Out, df.doc.Text())
		return err
	})
}
