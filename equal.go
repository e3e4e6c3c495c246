package formpath

import (
	"strconv"

	"github.com/formpath/formpath/ir"
)

// DeepEqual compares two trees structurally. Both nil is equal; nil
// against anything else is not. Objects compare by key set and values,
// insensitive to field order; arrays by length and elements, with nil
// holes comparing as nil. Numbers compare numerically, so an integer
// equals the same value stored as a float. Mismatched types are never
// equal. No cycle detection; form trees are acyclic.
func DeepEqual(a, b *ir.Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.NullType:
		return true
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.StringType:
		return a.String == b.String
	case ir.NumberType:
		return numEqual(a, b)
	case ir.FileType:
		return a.FileName == b.FileName && a.FileSize == b.FileSize
	case ir.ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !DeepEqual(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ir.ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		am, bm := ir.ToMap(a), ir.ToMap(b)
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok {
				return false
			}
			if !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numEqual(a, b *ir.Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	af, aok := numValue(a)
	bf, bok := numValue(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	return a.Number == b.Number
}

func numValue(y *ir.Node) (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
