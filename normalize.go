package formpath

import (
	"github.com/formpath/formpath/ir"
)

type normalizeOpts struct {
	acceptFiles bool
}

type NormalizeOpt func(*normalizeOpts)

// AcceptFiles(false) treats every file value as empty regardless of
// size. Zero-size files are always treated as empty.
func AcceptFiles(v bool) NormalizeOpt {
	return func(o *normalizeOpts) { o.acceptFiles = v }
}

// Normalize prunes empty values from a tree into a canonical minimal
// form: empty strings, nulls, empty containers, and empty files become
// nil (undefined); object keys come out sorted. Arrays keep their
// length, with pruned elements left as nil holes, so index-addressed
// names survive normalization. The result is freshly constructed.
// Normalize is idempotent.
func Normalize(node *ir.Node, opts ...NormalizeOpt) *ir.Node {
	o := &normalizeOpts{acceptFiles: true}
	for _, f := range opts {
		f(o)
	}
	res := normalize(node, o)
	if res != nil {
		res.Parent = nil
		res.ParentIndex = 0
		res.ParentField = ""
	}
	return res
}

func normalize(y *ir.Node, o *normalizeOpts) *ir.Node {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.ObjectType:
		m := make(map[string]*ir.Node, len(y.Fields))
		for i := range y.Fields {
			child := normalize(y.Values[i], o)
			if child == nil {
				continue
			}
			m[y.Fields[i].String] = child
		}
		if len(m) == 0 {
			return nil
		}
		// FromMap sorts keys, which is what makes two
		// structurally-equivalent trees DeepEqual regardless of
		// insertion order.
		return ir.FromMap(m)
	case ir.ArrayType:
		if len(y.Values) == 0 {
			return nil
		}
		vals := make([]*ir.Node, len(y.Values))
		for i := range y.Values {
			vals[i] = normalize(y.Values[i], o)
		}
		return ir.FromSlice(vals)
	case ir.StringType:
		if y.String == "" {
			return nil
		}
		return y.Clone()
	case ir.NullType:
		return nil
	case ir.FileType:
		if !o.acceptFiles || y.FileSize == 0 {
			return nil
		}
		return y.Clone()
	default:
		return y.Clone()
	}
}
