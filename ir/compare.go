package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two elements structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Roots compare as whole documents: type, then children in order (type,
// key, value), then length. Other elements compare by type, key and value.
// Cached sizes do not take part.
func Compare(a, b *Element) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.typ, b.typ); c != 0 {
		return c
	}
	if a.IsRoot() || b.IsRoot() {
		if !a.IsRoot() {
			return -1
		}
		if !b.IsRoot() {
			return 1
		}
		return compareDocs(a, b)
	}
	if c := strings.Compare(a.key, b.key); c != 0 {
		return c
	}
	return compareValues(a.value, b.value)
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Element) bool {
	return Compare(a, b) == 0
}

func compareDocs(a, b *Element) int {
	ac, bc := a.next, b.next
	for ac != nil && bc != nil {
		if c := Compare(ac, bc); c != 0 {
			return c
		}
		ac, bc = ac.next, bc.next
	}
	return cmp.Compare(a.count, b.count)
}

func compareValues(a, b Value) int {
	switch x := a.(type) {
	case Object:
		y := b.(Object)
		if x.Doc == nil || y.Doc == nil {
			return cmp.Compare(boolRank(x.Doc != nil), boolRank(y.Doc != nil))
		}
		return Compare(x.Doc, y.Doc)
	case Binary:
		return bytes.Compare(x, b.(Binary))
	case Char:
		return cmp.Compare(x, b.(Char))
	case Int32:
		return cmp.Compare(x, b.(Int32))
	case Int64:
		return cmp.Compare(x, b.(Int64))
	case Double:
		return cmp.Compare(x, b.(Double))
	}
	return 0
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}
