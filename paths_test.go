package formpath

import (
	"slices"
	"testing"
)

type parseNameTest struct {
	name string
	path Path
}

var parseNameTests = []parseNameTest{
	{"", nil},
	{"title", Path{Key("title")}},
	{"todos[0].content", Path{Key("todos"), Index(0), Key("content")}},
	{"tasks[]", Path{Key("tasks"), Append()}},
	{"a.b.c", Path{Key("a"), Key("b"), Key("c")}},
	{"a..b", Path{Key("a"), Key("b")}},
	{".a.", Path{Key("a")}},
	{"[0]", Path{Index(0)}},
	{"[0][1]", Path{Index(0), Index(1)}},
	{"a[0][1].b", Path{Key("a"), Index(0), Index(1), Key("b")}},
	// '[' that doesn't open "[digits]" or "[]" is literal key text
	{"a[b]", Path{Key("a[b]")}},
	{"a[1x]", Path{Key("a[1x]")}},
	{"a[", Path{Key("a[")}},
	// prototype-chain names vanish rather than erroring
	{"a.__proto__.b", Path{Key("a"), Key("b")}},
	{"constructor", nil},
	{"a.prototype[0]", Path{Key("a"), Index(0)}},
}

func TestParseName(t *testing.T) {
	for _, tst := range parseNameTests {
		got := ParseName(tst.name)
		if !slices.Equal(got, tst.path) {
			t.Errorf("ParseName(%q): got %v want %v", tst.name, got, tst.path)
		}
	}
}

type formatTest struct {
	path Path
	want string
}

var formatTests = []formatTest{
	{nil, ""},
	{Path{Key("title")}, "title"},
	{Path{Key("todos"), Index(0), Key("content")}, "todos[0].content"},
	{Path{Index(0), Key("k")}, "[0].k"},
	{Path{Key("tags"), Append()}, "tags[]"},
	{Path{Key("a"), Key("b")}, "a.b"},
	{Path{Key("a"), Index(1), Index(2)}, "a[1][2]"},
}

func TestPathString(t *testing.T) {
	for _, tst := range formatTests {
		if got := tst.path.String(); got != tst.want {
			t.Errorf("(%v).String(): got %q want %q", tst.path, got, tst.want)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, tst := range formatTests {
		got := ParseName(tst.path.String())
		if !slices.Equal(got, tst.path) {
			t.Errorf("round trip %q: got %v want %v", tst.want, got, tst.path)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		prefix string
		segs   []Segment
		want   string
	}{
		{"todos[0]", []Segment{Key("content")}, "todos[0].content"},
		{"", []Segment{Key("a"), Index(2)}, "a[2]"},
		{"tags", []Segment{Append()}, "tags[]"},
		// no segments: the prefix passes through even when not canonical
		{"weird..name", nil, "weird..name"},
		{"", nil, ""},
	}
	for _, tst := range tests {
		if got := FormatName(tst.prefix, tst.segs...); got != tst.want {
			t.Errorf("FormatName(%q, %v): got %q want %q",
				tst.prefix, tst.segs, got, tst.want)
		}
	}
}

func TestIsPrefix(t *testing.T) {
	tests := []struct {
		name, prefix string
		want         bool
	}{
		{"todos[0].content", "todos", true},
		{"todos[0].content", "todos[0]", true},
		{"todos[0].content", "todos[0].content", true},
		{"todos[0]", "todos[0].content", false},
		{"todos[1]", "todos[0]", false},
		// segment-aligned, not a string prefix
		{"total", "to", false},
		{"a.b", "", true},
	}
	for _, tst := range tests {
		if got := IsPrefix(tst.name, tst.prefix); got != tst.want {
			t.Errorf("IsPrefix(%q, %q): got %t", tst.name, tst.prefix, got)
		}
	}
}

func TestChildPath(t *testing.T) {
	tests := []struct {
		parent, child string
		want          Path
		ok            bool
	}{
		{"todos", "todos[0].content", Path{Index(0), Key("content")}, true},
		{"todos[0]", "todos[0]", Path{}, true},
		{"todos", "tasks[0]", nil, false},
		{"todos[0].content", "todos[0]", nil, false},
		{"", "a.b", Path{Key("a"), Key("b")}, true},
	}
	for _, tst := range tests {
		got, ok := ChildPath(tst.parent, tst.child)
		if ok != tst.ok || !slices.Equal(got, tst.want) {
			t.Errorf("ChildPath(%q, %q): got %v, %t want %v, %t",
				tst.parent, tst.child, got, ok, tst.want, tst.ok)
		}
	}
}
