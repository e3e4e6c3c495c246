// Package libdiff detects and renders changes between two flattened,
// normalized projections of form data.
package libdiff

import (
	"github.com/formpath/formpath"
	"github.com/formpath/formpath/debug"
	"github.com/formpath/formpath/ir"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "replace"
	}
}

// Change is one changed name. From is nil for an insert, To is nil for
// a delete.
type Change struct {
	Name string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) Kind() Kind {
	switch {
	case c.From == nil:
		return Insert
	case c.To == nil:
		return Delete
	default:
		return Replace
	}
}

// Changes compares two FlatMaps with DeepEqual: inserted and replaced
// names in to-order first, then deleted names in from-order. Two maps
// yield no changes exactly when every shared name is structurally equal
// and neither side has extra names.
func Changes(from, to *formpath.FlatMap) []Change {
	var res []Change
	for _, name := range to.Names() {
		t := to.Get(name)
		if !from.Has(name) {
			res = append(res, Change{Name: name, To: t})
			continue
		}
		f := from.Get(name)
		if formpath.DeepEqual(f, t) {
			continue
		}
		res = append(res, Change{Name: name, From: f, To: t})
	}
	for _, name := range from.Names() {
		if to.Has(name) {
			continue
		}
		res = append(res, Change{Name: name, From: from.Get(name)})
	}
	if debug.Diff() {
		names := make([]string, len(res))
		for i := range res {
			names[i] = res[i].Kind().String() + " " + res[i].Name
		}
		debug.Logf("diff: %d changes %s\n", len(res), debug.JSON(names))
	}
	return res
}
