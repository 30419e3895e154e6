package ir

import "testing"

func TestTypeText(t *testing.T) {
	for i, typ := range Types() {
		if int(typ) != i {
			t.Errorf("Types()[%d] = %d", i, typ)
		}
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("%s round trips to %s", typ, got)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("String")); err == nil {
		t.Errorf("unmarshaled unknown type")
	}
	if Type(9).Valid() || Type(9).String() != "<unknown type>" {
		t.Errorf("type 9 should be unknown")
	}
	if !ArrayType.IsContainer() || ObjectType.IsContainer() || ObjectType.IsLeaf() || !NullType.IsLeaf() {
		t.Errorf("container/leaf classification")
	}
}
