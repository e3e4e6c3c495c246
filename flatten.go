package formpath

import (
	"github.com/formpath/formpath/debug"
	"github.com/formpath/formpath/ir"
)

// FlatMap maps canonical names to normalized values, in traversal
// order. Absence of a name means "no value", not "value is empty".
type FlatMap struct {
	names  []string
	values map[string]*ir.Node
}

func (m *FlatMap) Len() int {
	return len(m.names)
}

// Names gives the names in traversal order of the original input tree.
func (m *FlatMap) Names() []string {
	return m.names
}

func (m *FlatMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

func (m *FlatMap) Get(name string) *ir.Node {
	return m.values[name]
}

// Node projects the map onto an ordered object node, for encoding.
func (m *FlatMap) Node() *ir.Node {
	kvs := make([]ir.KeyVal, len(m.names))
	for i, name := range m.names {
		kvs[i] = ir.KeyVal{Key: name, Val: m.values[name]}
	}
	return ir.FromKeyVals(kvs)
}

func (m *FlatMap) set(name string, y *ir.Node) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = y
}

type flattenOpts struct {
	resolve     func(*ir.Node) *ir.Node
	prefix      string
	acceptFiles bool
}

type FlattenOpt func(*flattenOpts)

// WithResolve applies a resolve step to every visited node before
// normalization. It must be total; it may receive nil (array holes).
func WithResolve(f func(*ir.Node) *ir.Node) FlattenOpt {
	return func(o *flattenOpts) { o.resolve = f }
}

// WithPrefix roots all emitted names under a name prefix.
func WithPrefix(prefix string) FlattenOpt {
	return func(o *flattenOpts) { o.prefix = prefix }
}

// WithAcceptFiles is forwarded to the per-node normalization.
func WithAcceptFiles(v bool) FlattenOpt {
	return func(o *flattenOpts) { o.acceptFiles = v }
}

// Flatten projects a tree into a FlatMap mirroring a form's field
// namespace. Every node is resolved, normalized, and recorded under its
// name when the normalized value is defined; containers and their
// children are emitted independently, so "tags" and "tags[0]" can both
// appear. Traversal follows the original, unsorted input order. A falsy
// root (nil, null, "", false, numeric zero) yields an empty map.
func Flatten(node *ir.Node, opts ...FlattenOpt) *FlatMap {
	o := &flattenOpts{
		resolve:     func(y *ir.Node) *ir.Node { return y },
		acceptFiles: true,
	}
	for _, f := range opts {
		f(o)
	}
	res := &FlatMap{values: map[string]*ir.Node{}}
	if !ir.Truth(node) {
		return res
	}
	o.visit(res, node, ParseName(o.prefix))
	if debug.Flatten() {
		debug.Logf("flatten: %d names %s\n", res.Len(), debug.JSON(res.Names()))
	}
	return res
}

func (o *flattenOpts) visit(res *FlatMap, y *ir.Node, path Path) {
	value := Normalize(o.resolve(y), AcceptFiles(o.acceptFiles))
	if value != nil {
		// the unprefixed root has no field name and is not an entry
		if name := path.String(); name != "" {
			res.set(name, value)
		}
	}
	if y == nil {
		return
	}
	switch y.Type {
	case ir.ArrayType:
		for i, child := range y.Values {
			o.visit(res, child, appendPath(path, Index(i)))
		}
	case ir.ObjectType:
		for i := range y.Fields {
			o.visit(res, y.Values[i], appendPath(path, Key(y.Fields[i].String)))
		}
	}
}

// appendPath extends a path without sharing the backing array across
// sibling visits.
func appendPath(path Path, seg Segment) Path {
	return append(path[:len(path):len(path)], seg)
}
