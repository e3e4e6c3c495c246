// Package gomap bridges between ir trees and plain Go values, YAML/JSON
// documents, and host file values.
package gomap

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/formpath/formpath/ir"
)

// File is a host-neutral file value: a name and a size. Hosts with
// their own file representation supply a FileProbe instead of
// converting to File first.
type File struct {
	Name string
	Size int64
}

// FileProbe decides whether a host value is file-like and, if so,
// reports its name and size. The normalizer itself never consults a
// host registry; file-likeness is decided here, at the bridge.
type FileProbe func(v any) (name string, size int64, ok bool)

// DefaultFileProbe recognizes gomap.File and fs.FileInfo values.
func DefaultFileProbe(v any) (string, int64, bool) {
	switch f := v.(type) {
	case File:
		return f.Name, f.Size, true
	case *File:
		return f.Name, f.Size, true
	case fs.FileInfo:
		return f.Name(), f.Size(), true
	}
	return "", 0, false
}

type fromOpts struct {
	probe FileProbe
}

type FromOption func(*fromOpts)

func WithFileProbe(p FileProbe) FromOption {
	return func(o *fromOpts) { o.probe = p }
}

// FromAny builds an ir tree from a plain Go value. Maps come out in
// sorted key order; yaml.MapSlice and []ir.KeyVal preserve their order.
// File-likeness is decided by the configured probe (DefaultFileProbe
// unless overridden).
func FromAny(v any, opts ...FromOption) (*ir.Node, error) {
	o := &fromOpts{probe: DefaultFileProbe}
	for _, f := range opts {
		f(o)
	}
	return fromAny(v, o)
}

func fromAny(v any, o *fromOpts) (*ir.Node, error) {
	if name, size, ok := o.probe(v); ok {
		return ir.FromFile(name, size), nil
	}
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339)), nil
	case []*ir.Node:
		return ir.FromSlice(cloneAll(x)), nil
	case map[string]*ir.Node:
		m := make(map[string]*ir.Node, len(x))
		for k, n := range x {
			m[k] = n.Clone()
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			y, err := fromAny(elt, o)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			y, err := fromAny(elt, o)
			if err != nil {
				return nil, err
			}
			m[k] = y
		}
		return ir.FromMap(m), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			y, err := fromAny(item.Value, o)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: fmt.Sprint(item.Key), Val: y}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("cannot map %T to ir", v)
	}
}

func cloneAll(ys []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, len(ys))
	for i, y := range ys {
		res[i] = y.Clone()
	}
	return res
}

// ToAny projects an ir tree onto plain Go values: objects become
// map[string]any, arrays []any (holes stay nil), files gomap.File.
// A nil node maps to nil, indistinguishable from null on this side.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	case ir.FileType:
		return File{Name: node.FileName, Size: node.FileSize}
	default:
		panic("impossible production")
	}
}
