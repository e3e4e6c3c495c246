// Package eval supplies an expression-backed resolve step for
// formpath.Flatten, compiled with expr-lang.
package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/formpath/formpath/debug"
	"github.com/formpath/formpath/gomap"
	"github.com/formpath/formpath/ir"
)

// Resolver evaluates a compiled expression against each visited node.
// The environment binds "value" to the node as plain Go data and "name"
// to its diagnostic path; getenv(s) reads the process environment.
type Resolver struct {
	src string
	prg *vm.Program
}

func NewResolver(src string) (*Resolver, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &Resolver{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Resolve is total: on a runtime error the input node passes through
// unchanged, so a bad expression degrades to the identity resolve.
func (r *Resolver) Resolve(node *ir.Node) *ir.Node {
	env := map[string]any{
		"value": gomap.ToAny(node),
		"name":  "",
	}
	if node != nil {
		env["name"] = node.Path()
	}
	res, err := expr.Run(r.prg, env)
	if err != nil {
		if debug.Resolve() {
			debug.Logf("resolve %q at %s: %v\n", r.src, env["name"], err)
		}
		return node
	}
	y, err := gomap.FromAny(res)
	if err != nil {
		if debug.Resolve() {
			debug.Logf("resolve %q gave unmappable %T\n", r.src, res)
		}
		return node
	}
	return y
}
