// Package formpath reconciles the flat, string-keyed namespace of HTML
// form fields (for example "todos[0].content") with a nested data model,
// in both directions: a name/path codec, guarded get/set over an ir tree,
// a canonicalizing normalizer, a flattener, and structural equality.
package formpath

import (
	"strconv"
	"strings"
)

type SegmentKind int

const (
	KeyKind SegmentKind = iota
	IndexKind
	// AppendKind marks an unspecified, new array slot, written "[]".
	AppendKind
)

// Segment is one atomic step of a Path: a string key, a non-negative
// integer index, or the append sentinel.
type Segment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

func Key(k string) Segment { return Segment{Kind: KeyKind, Key: k} }
func Index(i int) Segment  { return Segment{Kind: IndexKind, Index: i} }
func Append() Segment      { return Segment{Kind: AppendKind} }

func (s Segment) String() string {
	switch s.Kind {
	case IndexKind:
		return "[" + strconv.Itoa(s.Index) + "]"
	case AppendKind:
		return "[]"
	default:
		return s.Key
	}
}

// Path is an ordered sequence of segments; the empty path is the root.
type Path []Segment

// Segments equal to these names never survive parsing: a path-driven
// write primitive must not let attacker-controlled field names redirect
// writes onto a host object's prototype chain.
var reserved = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

// ParseName parses a field name into a Path. It splits on '.' and on
// bracket groups, where a bracket group is "[digits]" or "[]"; any other
// '[' is literal key text. Empty and reserved tokens are dropped, so the
// path silently shortens rather than erroring.
func ParseName(name string) Path {
	if name == "" {
		return nil
	}
	var (
		res Path
		tok strings.Builder
	)
	flush := func() {
		k := tok.String()
		tok.Reset()
		if k == "" || reserved[k] {
			return
		}
		res = append(res, Key(k))
	}
	for i := 0; i < len(name); {
		switch name[i] {
		case '.':
			flush()
			i++
		case '[':
			j, ok := bracketGroup(name, i)
			if !ok {
				tok.WriteByte('[')
				i++
				continue
			}
			flush()
			if j == i+1 {
				res = append(res, Append())
			} else {
				n, err := strconv.Atoi(name[i+1 : j])
				if err != nil {
					// digits overflowed int; treat as literal text
					tok.WriteString(name[i : j+1])
					i = j + 1
					continue
				}
				res = append(res, Index(n))
			}
			i = j + 1
		default:
			tok.WriteByte(name[i])
			i++
		}
	}
	flush()
	return res
}

// bracketGroup reports the position of the ']' closing a "[digits]" or
// "[]" group opened at i, if there is one.
func bracketGroup(name string, i int) (int, bool) {
	j := i + 1
	for j < len(name) && name[j] >= '0' && name[j] <= '9' {
		j++
	}
	if j < len(name) && name[j] == ']' {
		return j, true
	}
	return 0, false
}

// String formats a path in canonical name syntax: "[n]" and "[]" for
// array segments, ".key" for object segments with no dot while the
// accumulated name is still empty.
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		switch s.Kind {
		case IndexKind:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		case AppendKind:
			b.WriteString("[]")
		default:
			if b.Len() != 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.Key)
		}
	}
	return b.String()
}

// FormatName appends segments to a name prefix. With no segments the
// prefix is returned unchanged, even when it is not canonical.
func FormatName(prefix string, segs ...Segment) string {
	if len(segs) == 0 {
		return prefix
	}
	return append(ParseName(prefix), segs...).String()
}

// IsPrefix reports whether prefix is a leading, segment-aligned
// subsequence of name.
func IsPrefix(name, prefix string) bool {
	np, pp := ParseName(name), ParseName(prefix)
	if len(np) < len(pp) {
		return false
	}
	for i := range pp {
		if np[i] != pp[i] {
			return false
		}
	}
	return true
}

// ChildPath gives the suffix of child beyond parent when parent is a
// prefix of child (by the IsPrefix rule). ok is false when child is not
// a descendant; an exact match yields an empty suffix with ok true.
func ChildPath(parent, child string) (Path, bool) {
	cp, pp := ParseName(child), ParseName(parent)
	if len(cp) < len(pp) {
		return nil, false
	}
	for i := range pp {
		if cp[i] != pp[i] {
			return nil, false
		}
	}
	return cp[len(pp):], true
}
