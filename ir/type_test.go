package ir

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != typ {
			t.Errorf("%s: got %v", d, back)
		}
		if typ.IsLeaf() == (typ == ObjectType || typ == ArrayType) {
			t.Errorf("%s: IsLeaf %t", d, typ.IsLeaf())
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Form")); err == nil {
		t.Errorf("expected an error for an unknown type name")
	}
}
