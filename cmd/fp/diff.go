package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath"
	"github.com/formpath/formpath/gomap"
	"github.com/formpath/formpath/ir"
	"github.com/formpath/formpath/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.MergePatch {
		patch, err := libdiff.MergePatch(formpath.Normalize(a), formpath.Normalize(b))
		if err != nil {
			return fmt.Errorf("error computing merge patch: %w", err)
		}
		if _, err := cc.Out.Write(append(patch, '\n')); err != nil {
			return err
		}
	}
	changes := libdiff.Changes(formpath.Flatten(a), formpath.Flatten(b))
	if !cfg.MergePatch && !cfg.Quiet {
		useColor := cfg.useColor(cc.Out)
		for i := range changes {
			if err := printChange(cc.Out, &changes[i], useColor); err != nil {
				return err
			}
		}
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printChange(w io.Writer, c *libdiff.Change, useColor bool) error {
	var line string
	paint := fmt.Fprintln
	switch c.Kind() {
	case libdiff.Insert:
		line = "+ " + c.Name + ": " + gomap.MustJSON(c.To)
		if useColor {
			paint = color.New(color.FgGreen).Fprintln
		}
	case libdiff.Delete:
		line = "- " + c.Name + ": " + gomap.MustJSON(c.From)
		if useColor {
			paint = color.New(color.FgRed).Fprintln
		}
	case libdiff.Replace:
		if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
			line = "~ " + c.Name + ": " + libdiff.DiffString(c.From.String, c.To.String)
		} else {
			line = "~ " + c.Name + ": " + gomap.MustJSON(c.From) + " => " + gomap.MustJSON(c.To)
		}
		if useColor {
			paint = color.New(color.FgYellow).Fprintln
		}
	}
	_, err := paint(w, line)
	return err
}
