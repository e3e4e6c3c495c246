// Package form lifts a submitted form's ordered flat (name, value)
// pairs into a draft ir tree, including the submitter convention for
// the control that triggered submission.
package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/formpath/formpath"
	"github.com/formpath/formpath/ir"
)

// Entry is one submitted field: its flat name and its value.
type Entry struct {
	Name  string
	Value *ir.Node
}

func StringEntry(name, value string) Entry {
	return Entry{Name: name, Value: ir.FromString(value)}
}

func FileEntry(name, fileName string, size int64) Entry {
	return Entry{Name: name, Value: ir.FromFile(fileName, size)}
}

// WithSubmitter ensures the (name, value) pair of the submit control
// that triggered submission is present among the entries, appending it
// only when no verbatim pair already exists. Callers only pass the pair
// for submit-type controls with a non-empty name; an empty name is a
// no-op.
func WithSubmitter(entries []Entry, name string, value *ir.Node) []Entry {
	if name == "" {
		return entries
	}
	for _, e := range entries {
		if e.Name == name && formpath.DeepEqual(e.Value, value) {
			return entries
		}
	}
	return append(entries, Entry{Name: name, Value: value})
}

// TreeOf builds a draft tree from ordered entries with SetValue.
// Repeated names accumulate into an array, in submission order.
func TreeOf(entries []Entry) *ir.Node {
	root := &ir.Node{Type: ir.ObjectType}
	for _, e := range entries {
		value := e.Value
		formpath.SetValue(root, e.Name, func(prev *ir.Node) *ir.Node {
			switch {
			case prev == nil:
				return value
			case prev.Type == ir.ArrayType:
				return ir.FromSlice(append(prev.Values, value))
			default:
				return ir.FromSlice([]*ir.Node{prev, value})
			}
		})
	}
	return root
}

// ParseQuery decodes an application/x-www-form-urlencoded query into
// entries, preserving document order. url.Values would lose the order,
// which is significant for FlatMap consumers.
func ParseQuery(q string) ([]Entry, error) {
	var res []Entry
	for _, kv := range strings.Split(q, "&") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		name, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("bad field name %q: %w", k, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("bad value for %q: %w", name, err)
		}
		res = append(res, StringEntry(name, value))
	}
	return res, nil
}
