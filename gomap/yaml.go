package gomap

import (
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/formpath/formpath/ir"
)

// FromYAML decodes a YAML (or JSON; YAML is a superset) document into
// an ir tree. Decoding goes through an ordered map so document key
// order survives into the tree.
func FromYAML(d []byte, opts ...FromOption) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v, opts...)
}

// MarshalYAML renders node as YAML, preserving object field order.
func MarshalYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToYAMLAny(node))
}

// ToYAMLAny projects an ir tree onto goccy yaml values, using
// yaml.MapSlice for objects so field order is kept.
func ToYAMLAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: ToYAMLAny(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToYAMLAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	case ir.FileType:
		return yaml.MapSlice{
			{Key: "name", Value: node.FileName},
			{Key: "size", Value: node.FileSize},
		}
	default:
		panic("type")
	}
}
