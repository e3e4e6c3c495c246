package formpath

import (
	"github.com/formpath/formpath/debug"
	"github.com/formpath/formpath/ir"
)

// GetValue walks name segment by segment from root and returns the node
// reached, unnormalized. It returns nil (undefined) as soon as traversal
// meets nil, null, a missing field, an out-of-range index, or a segment
// whose kind does not match the container. The append sentinel never
// matches in a read.
func GetValue(root *ir.Node, name string) *ir.Node {
	ptr := root
	for _, seg := range ParseName(name) {
		if ptr == nil || ptr.Type == ir.NullType {
			return nil
		}
		switch {
		case ptr.Type == ir.ObjectType && seg.Kind == KeyKind:
			i := fieldIndex(ptr, seg.Key)
			if i < 0 {
				return nil
			}
			ptr = ptr.Values[i]
		case ptr.Type == ir.ArrayType && seg.Kind == IndexKind:
			if seg.Index < 0 || seg.Index >= len(ptr.Values) {
				return nil
			}
			ptr = ptr.Values[seg.Index]
		default:
			return nil
		}
	}
	return ptr
}

// SetValue mutates root in place, storing update(prev) at name. Missing
// intermediate containers are created: an array when the next segment is
// an index or the append sentinel, an object otherwise. Null and scalar
// children met on the walk are replaced by fresh containers the same
// way. A nil or null root, or a container/segment kind mismatch, aborts
// silently; the write is lost and no error is reported.
func SetValue(root *ir.Node, name string, update func(prev *ir.Node) *ir.Node) {
	path := ParseName(name)
	if len(path) == 0 {
		return
	}
	if debug.Set() {
		debug.Logf("set %q (%d segments)\n", name, len(path))
	}
	ptr := root
	for i, seg := range path {
		if ptr == nil || ptr.Type == ir.NullType {
			return
		}
		last := i == len(path)-1
		switch {
		case ptr.Type == ir.ObjectType && seg.Kind == KeyKind:
			fi := fieldIndex(ptr, seg.Key)
			if last {
				var prev *ir.Node
				if fi >= 0 {
					prev = ptr.Values[fi]
				}
				setField(ptr, fi, seg.Key, update(prev))
				return
			}
			var child *ir.Node
			if fi >= 0 {
				child = ptr.Values[fi]
			}
			if !isContainer(child) {
				child = newContainer(path, i)
				setField(ptr, fi, seg.Key, child)
			}
			ptr = child
		case ptr.Type == ir.ArrayType && seg.Kind != KeyKind:
			idx := seg.Index
			if seg.Kind == AppendKind {
				idx = len(ptr.Values)
			}
			if idx < 0 {
				return
			}
			if last {
				var prev *ir.Node
				if idx < len(ptr.Values) {
					prev = ptr.Values[idx]
				}
				setElem(ptr, idx, update(prev))
				return
			}
			var child *ir.Node
			if idx < len(ptr.Values) {
				child = ptr.Values[idx]
			}
			if !isContainer(child) {
				child = newContainer(path, i)
				setElem(ptr, idx, child)
			}
			ptr = child
		default:
			// scalar pointer or kind mismatch: the write is dropped
			return
		}
	}
}

func isContainer(y *ir.Node) bool {
	if y == nil {
		return false
	}
	return y.Type == ir.ObjectType || y.Type == ir.ArrayType
}

// newContainer picks the container for the slot at path[i] from a
// one-segment lookahead: an array when path[i+1] addresses an array.
func newContainer(path Path, i int) *ir.Node {
	if nextSegmentIsIndex(path, i) {
		return &ir.Node{Type: ir.ArrayType}
	}
	return &ir.Node{Type: ir.ObjectType}
}

func nextSegmentIsIndex(path Path, i int) bool {
	if i+1 >= len(path) {
		return false
	}
	k := path[i+1].Kind
	return k == IndexKind || k == AppendKind
}

func fieldIndex(obj *ir.Node, key string) int {
	for i := range obj.Fields {
		if obj.Fields[i].String == key {
			return i
		}
	}
	return -1
}

// setField assigns val at field fi of obj, appending a new field (in
// insertion order) when fi < 0.
func setField(obj *ir.Node, fi int, key string, val *ir.Node) {
	if fi < 0 {
		fi = len(obj.Fields)
		obj.Fields = append(obj.Fields, &ir.Node{
			Parent:      obj,
			ParentIndex: fi,
			ParentField: key,
			Type:        ir.StringType,
			String:      key,
		})
		obj.Values = append(obj.Values, nil)
	}
	if val != nil {
		val.Parent = obj
		val.ParentIndex = fi
		val.ParentField = key
	}
	obj.Values[fi] = val
}

// setElem assigns val at index idx of arr, growing with nil holes when
// idx is beyond the current length.
func setElem(arr *ir.Node, idx int, val *ir.Node) {
	for len(arr.Values) <= idx {
		arr.Values = append(arr.Values, nil)
	}
	if val != nil {
		val.Parent = arr
		val.ParentIndex = idx
	}
	arr.Values[idx] = val
}
