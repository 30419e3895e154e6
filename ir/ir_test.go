package ir

import "testing"

// calcSize recomputes the encoded size of a document from scratch.
func calcSize(r *Element) int {
	n := headerSize
	for c := r.next; c != nil; c = c.next {
		n += tagSize
		if r.typ == DictType {
			n += lenSize + len(c.key) + 1
		}
		switch v := c.value.(type) {
		case Object:
			if v.Doc != nil {
				n += calcSize(v.Doc)
			}
		case Binary:
			n += lenSize + len(v)
		case Char:
			n++
		case Int32:
			n += 4
		case Int64, Double:
			n += 8
		}
	}
	return n
}

// checkDoc verifies count, size, linkage and key uniqueness of a document
// and of every document nested in it.
func checkDoc(t *testing.T, r *Element) {
	t.Helper()
	if !r.IsRoot() {
		t.Fatalf("checkDoc on non-root %s", r.typ)
	}
	if !r.typ.IsContainer() {
		t.Errorf("root of type %s", r.typ)
	}
	if got, want := r.size, calcSize(r); got != want {
		t.Errorf("%s: cached size %d, computed %d", r.Path(), got, want)
	}
	n := 0
	keys := map[string]bool{}
	prev := r
	for c := r.next; c != nil; c = c.next {
		n++
		if c.prev != prev {
			t.Errorf("%s: broken prev link", c.Path())
		}
		if c.root != r {
			t.Errorf("%s: wrong root", c.Path())
		}
		if c.typ.IsContainer() {
			t.Errorf("%s: nested %s", c.Path(), c.typ)
		}
		if r.typ == DictType {
			if keys[c.key] {
				t.Errorf("duplicate key %q", c.key)
			}
			keys[c.key] = true
		}
		if o, ok := c.value.(Object); ok && o.Doc != nil {
			if o.Doc.holder != c {
				t.Errorf("%s: nested document not linked to its element", c.Path())
			}
			checkDoc(t, o.Doc)
		}
		prev = c
	}
	if n != r.count {
		t.Errorf("%s: count %d, linked %d", r.Path(), r.count, n)
	}
}

func mustNew(t *testing.T, typ Type) *Element {
	t.Helper()
	doc, err := New(typ)
	if err != nil {
		t.Fatalf("New(%s): %v", typ, err)
	}
	return doc
}

func mustAdd(t *testing.T, prev *Element, typ Type, key string, v Value) *Element {
	t.Helper()
	e, err := Add(prev, typ, key, v)
	if err != nil {
		t.Fatalf("Add(%s, %q): %v", typ, key, err)
	}
	return e
}

// person builds {"Name": Binary("John Doe"), "Nr": Int32(10)}.
func person(t *testing.T) *Element {
	t.Helper()
	doc := mustNew(t, DictType)
	e := mustAdd(t, doc, BinaryType, "Name", Binary("John Doe"))
	mustAdd(t, e, Int32Type, "Nr", Int32(10))
	return doc
}

func allTypes() []Value {
	return []Value{
		Binary("Message"),
		Int32(0xB16B00B5),
		Int64(0xDEADBEEFABAD1DEA),
		Char('A'),
		Null{},
		Double(13.37),
	}
}
