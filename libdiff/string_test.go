package libdiff

import (
	"strings"
	"testing"
)

func TestDiffString(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{"hello world", "hello brave world", "hello {+brave +}world"},
		{"hello brave world", "hello world", "hello [-brave -]world"},
		{"same", "same", "same"},
	}
	for _, tst := range tests {
		if got := DiffString(tst.from, tst.to); got != tst.want {
			t.Errorf("DiffString(%q, %q): got %q want %q",
				tst.from, tst.to, got, tst.want)
		}
	}
}

func TestDiffStringMultiline(t *testing.T) {
	got := DiffString("a\nb\nc\n", "a\nx\nc\n")
	if !strings.Contains(got, "[-b") || !strings.Contains(got, "{+x") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "a\n") || !strings.Contains(got, "c\n") {
		t.Errorf("common lines lost: %q", got)
	}
}
