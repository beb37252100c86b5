package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/textgraft/graft/addr"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires 1 argument, an address", cli.ErrUsage)
	}
	a, err := addr.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return eachDocFile(cfg.MainConfig, cc, args[1:], func(df *docFile) error {
		text, ok := df.doc.TextByAddress(a)
		if !ok {
			return fmt.Errorf("no text leaf at %s", a)
		}
		_, err := fmt.Fprintln(cc.Out, text)
		return err
	})
}
