package ir

import "testing"

func TestAt(t *testing.T) {
	empty := mustNew(t, ArrayType)
	if empty.At(0) != nil {
		t.Errorf("At(0) on empty document")
	}

	doc := mustNew(t, ArrayType)
	prev := doc
	for _, v := range allTypes() {
		prev = mustAdd(t, prev, v.Type(), "", v)
	}
	tests := []struct {
		index int
		want  Type
		nilOK bool
	}{
		{0, BinaryType, false},
		{2, Int64Type, false},
		{5, DoubleType, false},
		{6, 0, true},
		{-1, 0, true},
	}
	for _, tt := range tests {
		got := doc.At(tt.index)
		if tt.nilOK {
			if got != nil {
				t.Errorf("At(%d) = %s, want nil", tt.index, got.Type())
			}
			continue
		}
		if got == nil || got.Type() != tt.want {
			t.Errorf("At(%d) = %v, want %s", tt.index, got, tt.want)
		}
	}
	// any element of the document answers for the document
	if doc.At(4).At(2).Uint64() != 0xDEADBEEFABAD1DEA {
		t.Errorf("At from a child")
	}
}

func TestGet(t *testing.T) {
	empty := mustNew(t, DictType)
	if empty.Get("Key") != nil {
		t.Errorf("Get on empty document")
	}

	doc := person(t)
	tests := []struct {
		key  string
		want string
	}{
		{"Name", "Name"},
		{"Nr", "Nr"},
		{"N", ""},
		{"Nrr", ""},
		{"name", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := doc.Get(tt.key)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("Get(%q) = %q, want nil", tt.key, got.Key())
		case tt.want != "" && (got == nil || got.Key() != tt.want):
			t.Errorf("Get(%q) = %v, want %q", tt.key, got, tt.want)
		}
	}
	if doc.Get("Nr").Uint32() != 10 || string(doc.Get("Name").Bytes()) != "John Doe" {
		t.Errorf("unexpected values")
	}
}

func TestIteration(t *testing.T) {
	doc := mustNew(t, ArrayType)
	prev := doc
	for i := range uint32(10) {
		prev = mustAdd(t, prev, Int32Type, "", Int32(i))
	}

	var counter uint32
	for e := doc; e.HasNext(); {
		e = e.Next()
		if e.Uint32() != counter {
			t.Fatalf("step %d: value %d", counter, e.Uint32())
		}
		counter++
	}
	if int(counter) != doc.Len() || counter != 10 {
		t.Errorf("iterated %d elements, Len() = %d", counter, doc.Len())
	}

	n := 0
	for i, e := range doc.All() {
		if e.Index() != i {
			t.Errorf("Index() = %d, want %d", e.Index(), i)
		}
		n++
		if i == 4 {
			break
		}
	}
	if n != 5 {
		t.Errorf("All stopped after %d", n)
	}
	if doc.Index() != -1 {
		t.Errorf("root Index() = %d", doc.Index())
	}
}
