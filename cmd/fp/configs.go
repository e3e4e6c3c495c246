package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/formpath/formpath/gomap"
	"github.com/formpath/formpath/ir"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output json (default)'"`
	Y     bool `cli:"name=y aliases=yaml desc='output yaml'"`
	Color bool `cli:"name=color desc='force colored diff output'"`

	Main *cli.Command
}

func (cfg *MainConfig) write(w io.Writer, node *ir.Node) error {
	if cfg.Y {
		d, err := gomap.MarshalYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	d := gomap.AppendJSON(nil, node)
	d = append(d, '\n')
	_, err := w.Write(d)
	return err
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FlattenConfig struct {
	*MainConfig

	Resolve string `cli:"name=resolve desc='resolve expression applied to every node'"`
	Prefix  string `cli:"name=prefix desc='name prefix for emitted fields'"`
	NoFiles bool   `cli:"name=nofiles desc='treat file values as empty'"`

	Flatten *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type NormalizeConfig struct {
	*MainConfig

	NoFiles bool `cli:"name=nofiles desc='treat file values as empty'"`

	Normalize *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet      bool `cli:"name=q desc='report via exit code only'"`
	MergePatch bool `cli:"name=merge-patch desc='emit an RFC 7386 merge patch'"`

	Diff *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Submitter string `cli:"name=submitter desc='submitter pair, name=value'"`

	Build *cli.Command
}
