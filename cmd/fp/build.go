package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath/form"
	"github.com/formpath/formpath/ir"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var entries []form.Entry
	for _, arg := range args {
		q, err := queryArg(cc, arg)
		if err != nil {
			return err
		}
		es, err := form.ParseQuery(q)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		entries = append(entries, es...)
	}
	if cfg.Submitter != "" {
		name, value, _ := strings.Cut(cfg.Submitter, "=")
		entries = form.WithSubmitter(entries, name, ir.FromString(value))
	}
	return cfg.write(cc.Out, form.TreeOf(entries))
}

// queryArg resolves a build argument to query text: "-" reads cc.In,
// "@path" reads a file, anything else is the query itself.
func queryArg(cc *cli.Context, arg string) (string, error) {
	switch {
	case arg == "-":
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return "", fmt.Errorf("error reading: %w", err)
		}
		return strings.TrimSpace(string(d)), nil
	case strings.HasPrefix(arg, "@"):
		d, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("could not read %q: %w", arg[1:], err)
		}
		return strings.TrimSpace(string(d)), nil
	default:
		return arg, nil
	}
}
