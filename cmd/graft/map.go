package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func mapCmd(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colorsFor(cc.Out)
	return eachDocFile(cfg.MainConfig, cc, args, func(df *docFile) error {
		for _, e := range df.doc.Mapping() {
			a := e.Addr.String()
			if colors != nil {
				a = colors.Addr("%s", a)
			}
			if _, err := fmt.Fprintf(cc.Out, "%s\t%q\n", a, e.Text); err != nil {
				return err
			}
		}
		return nil
	})
}
