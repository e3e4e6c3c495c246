package gomap

import (
	"testing"

	"github.com/formpath/formpath/ir"
)

type jsonTest struct {
	node *ir.Node
	want string
}

func TestAppendJSON(t *testing.T) {
	tests := []jsonTest{
		{nil, `null`},
		{ir.Null(), `null`},
		{ir.FromString("a\"b"), `"a\"b"`},
		{ir.FromInt(-3), `-3`},
		{ir.FromFloat(2.5), `2.5`},
		{ir.FromBool(true), `true`},
		{ir.FromFile("a.txt", 3), `{"name":"a.txt","size":3}`},
		// insertion order, not sorted, and holes as null
		{ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromInt(1)},
			{Key: "a", Val: ir.FromSlice([]*ir.Node{nil, ir.FromString("x")})},
		}), `{"b":1,"a":[null,"x"]}`},
	}
	for _, tst := range tests {
		if got := MustJSON(tst.node); got != tst.want {
			t.Errorf("got %s want %s", got, tst.want)
		}
	}
}

func TestFromYAMLKeepsOrder(t *testing.T) {
	node, err := FromYAML([]byte("b: 1\na: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustJSON(node); got != `{"b":1,"a":2}` {
		t.Errorf("got %s", got)
	}
}

func TestFromYAMLJSONDoc(t *testing.T) {
	node, err := FromYAML([]byte(`{"todos":[{"content":"hi"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustJSON(node); got != `{"todos":[{"content":"hi"}]}` {
		t.Errorf("got %s", got)
	}
}

func TestMarshalYAMLKeepsOrder(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromString("x")},
	})
	d, err := MarshalYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(d); got != "b: 1\na: x\n" {
		t.Errorf("got %q", got)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	// "n" would come back quoted (a YAML 1.1 boolean-ish token)
	doc := "todos:\n- content: hi\n- content: bye\ncount: 3\n"
	node, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	d, err := MarshalYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != doc {
		t.Errorf("got %q want %q", d, doc)
	}
}
