package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath"
	"github.com/formpath/formpath/eval"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var fOpts []formpath.FlattenOpt
	if cfg.Prefix != "" {
		fOpts = append(fOpts, formpath.WithPrefix(cfg.Prefix))
	}
	if cfg.NoFiles {
		fOpts = append(fOpts, formpath.WithAcceptFiles(false))
	}
	if cfg.Resolve != "" {
		r, err := eval.NewResolver(cfg.Resolve)
		if err != nil {
			return fmt.Errorf("bad -resolve expression: %w", err)
		}
		fOpts = append(fOpts, formpath.WithResolve(r.Resolve))
	}
	for i, arg := range args {
		node, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		fm := formpath.Flatten(node, fOpts...)
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := cfg.write(cc.Out, fm.Node()); err != nil {
			return err
		}
	}
	return nil
}
