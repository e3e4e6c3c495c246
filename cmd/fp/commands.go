package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "fp").
		WithSynopsis("fp [opts] command [opts]").
		WithDescription("fp works with form field paths over nested form data.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: fp expects a command", cli.ErrUsage)
		}).
		WithSubs(
			FlattenCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			NormalizeCommand(cfg),
			DiffCommand(cfg),
			BuildCommand(cfg))
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f", "fl").
		WithSynopsis("flatten [-resolve expr] [-prefix name] [files]").
		WithDescription("project documents onto their flat field namespace").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <name> [files]").
		WithDescription("get the value at a field name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set <name> <value> [files]").
		WithDescription("set the value at a field name and print the document").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func NormalizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormalizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Normalize, "normalize").
		WithAliases("n", "norm").
		WithSynopsis("normalize [-nofiles] [files]").
		WithDescription("prune empty values into the canonical minimal form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return normalize(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-q] [-merge-patch] a b").
		WithDescription("compare the flattened forms of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [-submitter name=value] <query|@file|->...").
		WithDescription("lift url-encoded (name, value) pairs into a draft tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}
