package libdiff

import (
	"testing"

	"github.com/formpath/formpath/gomap"
)

func TestMergePatch(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{"a: 1\nb: 2\n", "a: 1\nb: 3\nc: 4\n", `{"b":3,"c":4}`},
		{"a: 1\nb: 2\n", "a: 1\n", `{"b":null}`},
		{"a: 1\n", "a: 1\n", `{}`},
	}
	for _, tst := range tests {
		from, err := gomap.FromYAML([]byte(tst.from))
		if err != nil {
			t.Fatal(err)
		}
		to, err := gomap.FromYAML([]byte(tst.to))
		if err != nil {
			t.Fatal(err)
		}
		patch, err := MergePatch(from, to)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(patch); got != tst.want {
			t.Errorf("MergePatch(%q, %q): got %s want %s",
				tst.from, tst.to, got, tst.want)
		}
	}
}
