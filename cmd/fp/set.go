package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath"
	"github.com/formpath/formpath/gomap"
	"github.com/formpath/formpath/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a field name and a value", cli.ErrUsage)
	}
	name := args[0]
	value, err := gomap.FromYAML([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("bad value %q: %w", args[1], err)
	}
	args = args[2:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		node, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		formpath.SetValue(node, name, func(*ir.Node) *ir.Node {
			return value.Clone()
		})
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := cfg.write(cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
