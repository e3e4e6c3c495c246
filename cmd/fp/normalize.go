package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath"
)

func normalize(cfg *NormalizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Normalize.Parse(cc, args)
	if err != nil {
		cfg.Normalize.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var nOpts []formpath.NormalizeOpt
	if cfg.NoFiles {
		nOpts = append(nOpts, formpath.AcceptFiles(false))
	}
	for i, arg := range args {
		node, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		// a fully-empty document normalizes to undefined, shown as null
		if err := cfg.write(cc.Out, formpath.Normalize(node, nOpts...)); err != nil {
			return err
		}
	}
	return nil
}
