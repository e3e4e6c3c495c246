package formpath

import (
	"testing"

	"github.com/formpath/formpath/ir"
)

type deepEqualTest struct {
	a, b string
	want bool
}

var deepEqualTests = []deepEqualTest{
	{"a:\n- 1\n- 2\n", "a:\n- 1\n- 2\n", true},
	{"a:\n- 1\n- 2\n", "a:\n- 1\n- 3\n", false},
	{"a:\n- 1\n- 2\n", "a:\n- 1\n", false},
	// objects compare by key set, not field order
	{"a: 1\nb: 2\n", "b: 2\na: 1\n", true},
	{"a: 1\nb: 2\n", "a: 1\n", false},
	// no cross-type coercion
	{"a: 0\n", "a: false\n", false},
	{"a: '1'\n", "a: 1\n", false},
	{"a: 1\n", "a:\n- 1\n", false},
	{"a: null\n", "a: ''\n", false},
	// numbers compare numerically across representations
	{"n: 1\n", "n: 1.0\n", true},
	{"n: 1\n", "n: 2\n", false},
}

func TestDeepEqual(t *testing.T) {
	for _, tst := range deepEqualTests {
		a, b := mustDoc(t, tst.a), mustDoc(t, tst.b)
		if got := DeepEqual(a, b); got != tst.want {
			t.Errorf("DeepEqual(%q, %q): got %t", tst.a, tst.b, got)
		}
		if got := DeepEqual(b, a); got != tst.want {
			t.Errorf("DeepEqual(%q, %q): got %t", tst.b, tst.a, got)
		}
	}
}

func TestDeepEqualUndefined(t *testing.T) {
	if !DeepEqual(nil, nil) {
		t.Errorf("nil should equal nil")
	}
	if DeepEqual(nil, ir.Null()) {
		t.Errorf("undefined should not equal null")
	}
	if !DeepEqual(ir.Null(), ir.Null()) {
		t.Errorf("null should equal null")
	}
}

func TestDeepEqualHoles(t *testing.T) {
	a := ir.FromSlice([]*ir.Node{nil, ir.FromInt(1)})
	if !DeepEqual(a, a.Clone()) {
		t.Errorf("array with a hole should equal its clone")
	}
	b := ir.FromSlice([]*ir.Node{ir.Null(), ir.FromInt(1)})
	if DeepEqual(a, b) {
		t.Errorf("a hole should not equal an explicit null")
	}
}

func TestDeepEqualFiles(t *testing.T) {
	a := ir.FromFile("a.txt", 3)
	if !DeepEqual(a, ir.FromFile("a.txt", 3)) {
		t.Errorf("identical files should be equal")
	}
	if DeepEqual(a, ir.FromFile("a.txt", 4)) {
		t.Errorf("size should distinguish files")
	}
	if DeepEqual(a, ir.FromFile("b.txt", 3)) {
		t.Errorf("name should distinguish files")
	}
}
