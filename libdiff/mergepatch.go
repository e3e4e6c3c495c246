package libdiff

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/formpath/formpath/gomap"
	"github.com/formpath/formpath/ir"
)

// MergePatch computes an RFC 7386 merge patch taking from to to, over
// the ordered JSON encoding of the two trees.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	a := gomap.AppendJSON(nil, from)
	b := gomap.AppendJSON(nil, to)
	return jsonpatch.CreateMergePatch(a, b)
}
