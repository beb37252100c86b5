package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/textgraft/graft"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires 1 argument, the text to locate", cli.ErrUsage)
	}
	query := args[0]
	opts := []graft.FindOpt{
		graft.FindPreserveWord(cfg.W),
		graft.FindCaseSensitive(!cfg.I),
	}
	return eachDocFile(cfg.MainConfig, cc, args[1:], func(df *docFile) error {
		for _, a := range df.doc.AddressesForText(query, opts...) {
			if _, err := fmt.Fprintln(cc.Out, a); err != nil {
				return err
			}
		}
		return nil
	})
}
