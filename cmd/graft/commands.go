package main

import (
	"strconv"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "graft").
		WithSynopsis("graft [opts] command [opts]").
		WithDescription("graft locates and replaces text in node trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return graftMain(cfg, cc, args)
		}).
		WithSubs(
			TextCommand(cfg),
			MapCommand(cfg),
			FindCommand(cfg),
			GetCommand(cfg),
			ViewCommand(cfg),
			ReplaceCommand(cfg))
}

func TextCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TextConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("text").
		WithAliases("t").
		WithSynopsis("text [files]").
		WithDescription("print a document's visible text, markup stripped").
		WithRun(func(cc *cli.Context, args []string) error {
			return text(cfg, cc, args)
		})
	cfg.Text = cmd
	return cmd
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("map").
		WithAliases("m").
		WithSynopsis("map [files]").
		WithDescription("print the (address, text) mapping of a document's text leaves").
		WithRun(func(cc *cli.Context, args []string) error {
			return mapCmd(cfg, cc, args)
		})
	cfg.Map = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithSynopsis("find [-w] [-i] <text> [files]").
		WithDescription("print the addresses of text leaves containing text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <address> [files]").
		WithDescription("print the text leaf at an address").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print a document's node tree with addresses, in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ReplaceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplaceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "at",
			Description: "resolve the target node by address instead of text lookup",
			Type: cli.NamedFuncOpt(func(cc *cli.Context, a string) (any, error) {
				cfg.At = a
				return a, nil
			}, "(address)"),
		},
		&cli.Opt{
			Name:        "n",
			Description: "replace the n-th occurrence in the target node (0-based)",
			Type: cli.NamedFuncOpt(func(cc *cli.Context, a string) (any, error) {
				n, err := strconv.Atoi(a)
				if err != nil {
					return nil, err
				}
				cfg.N = n
				return n, nil
			}, "(index)"),
		},
		&cli.Opt{
			Name:        "select",
			Description: "replace the first occurrence matching an expression over {index, count, text, lead, trail}",
			Type: cli.NamedFuncOpt(func(cc *cli.Context, a string) (any, error) {
				cfg.Select = a
				return a, nil
			}, "(expr)"),
		})
	cmd := cli.NewCommand("replace").
		WithAliases("r").
		WithSynopsis("replace [opts] <text> <replacement> [files]").
		WithDescription("replace one occurrence of text and write the document back out").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return replace(cfg, cc, args)
		})
	cfg.Replace = cmd
	return cmd
}
