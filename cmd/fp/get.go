package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a field name", cli.ErrUsage)
	}
	name := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	missing := false
	for i, arg := range args {
		node, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res := formpath.GetValue(node, name)
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if res == nil {
			// undefined: no output for this document
			missing = true
			continue
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return err
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}
