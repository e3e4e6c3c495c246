package form

import (
	"testing"

	"github.com/formpath/formpath"
	"github.com/formpath/formpath/gomap"
	"github.com/formpath/formpath/ir"
)

func TestParseQuery(t *testing.T) {
	entries, err := ParseQuery("title=hi&todos%5B0%5D.content=a+b&title=bye&flag")
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		StringEntry("title", "hi"),
		StringEntry("todos[0].content", "a b"),
		StringEntry("title", "bye"),
		StringEntry("flag", ""),
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries", len(entries))
	}
	for i := range want {
		if entries[i].Name != want[i].Name ||
			!formpath.DeepEqual(entries[i].Value, want[i].Value) {
			t.Errorf("entry %d: got %v want %v", i, entries[i], want[i])
		}
	}
}

func TestParseQueryBadEscape(t *testing.T) {
	if _, err := ParseQuery("a%zz=1"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestTreeOf(t *testing.T) {
	entries := []Entry{
		StringEntry("title", "hi"),
		StringEntry("todos[0].content", "a"),
		StringEntry("todos[1].content", "b"),
	}
	got := gomap.MustJSON(TreeOf(entries))
	want := `{"title":"hi","todos":[{"content":"a"},{"content":"b"}]}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestTreeOfRepeatedNames(t *testing.T) {
	// repeated names accumulate into an array in submission order
	entries := []Entry{
		StringEntry("tag", "a"),
		StringEntry("tag", "b"),
		StringEntry("tag", "c"),
	}
	got := gomap.MustJSON(TreeOf(entries))
	if got != `{"tag":["a","b","c"]}` {
		t.Errorf("got %s", got)
	}
}

func TestTreeOfAppend(t *testing.T) {
	entries := []Entry{
		StringEntry("tags[]", "a"),
		StringEntry("tags[]", "b"),
	}
	got := gomap.MustJSON(TreeOf(entries))
	if got != `{"tags":["a","b"]}` {
		t.Errorf("got %s", got)
	}
}

func TestTreeOfFiles(t *testing.T) {
	entries := []Entry{
		FileEntry("doc", "a.txt", 3),
	}
	got := gomap.MustJSON(TreeOf(entries))
	if got != `{"doc":{"name":"a.txt","size":3}}` {
		t.Errorf("got %s", got)
	}
}

func TestWithSubmitter(t *testing.T) {
	base := []Entry{StringEntry("intent", "save")}

	got := WithSubmitter(base, "intent", ir.FromString("save"))
	if len(got) != 1 {
		t.Errorf("verbatim pair duplicated: %v", got)
	}

	got = WithSubmitter(base, "intent", ir.FromString("delete"))
	if len(got) != 2 || got[1].Name != "intent" {
		t.Fatalf("got %v", got)
	}
	if got[1].Value.String != "delete" {
		t.Errorf("got %v", got[1])
	}

	got = WithSubmitter(base, "", ir.FromString("x"))
	if len(got) != 1 {
		t.Errorf("empty name should be a no-op: %v", got)
	}
}
