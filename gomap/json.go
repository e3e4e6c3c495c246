package gomap

import (
	"encoding/json"
	"strconv"

	"github.com/formpath/formpath/ir"
)

// AppendJSON appends the JSON encoding of node to dst, keeping object
// fields in their insertion order. The standard library marshals maps
// in sorted key order, which would destroy the traversal order a
// FlatMap projection carries, so the writer is by hand. Undefined
// nodes (nil, including array holes) encode as null.
func AppendJSON(dst []byte, node *ir.Node) []byte {
	if node == nil {
		return append(dst, "null"...)
	}
	switch node.Type {
	case ir.ObjectType:
		dst = append(dst, '{')
		for i := range node.Fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, node.Fields[i].String)
			dst = append(dst, ':')
			dst = AppendJSON(dst, node.Values[i])
		}
		return append(dst, '}')
	case ir.ArrayType:
		dst = append(dst, '[')
		for i, elt := range node.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, elt)
		}
		return append(dst, ']')
	case ir.StringType:
		return appendString(dst, node.String)
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.AppendInt(dst, *node.Int64, 10)
		}
		if node.Float64 != nil {
			return strconv.AppendFloat(dst, *node.Float64, 'g', -1, 64)
		}
		if node.Number != "" {
			return append(dst, node.Number...)
		}
		return append(dst, '0')
	case ir.BoolType:
		return strconv.AppendBool(dst, node.Bool)
	case ir.NullType:
		return append(dst, "null"...)
	case ir.FileType:
		dst = append(dst, `{"name":`...)
		dst = appendString(dst, node.FileName)
		dst = append(dst, `,"size":`...)
		dst = strconv.AppendInt(dst, node.FileSize, 10)
		return append(dst, '}')
	default:
		panic("type")
	}
}

func appendString(dst []byte, s string) []byte {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return append(dst, d...)
}

// MustJSON renders node as a JSON string, for display and tests.
func MustJSON(node *ir.Node) string {
	return string(AppendJSON(nil, node))
}
