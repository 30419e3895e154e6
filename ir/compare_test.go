package ir

import (
	"math"
	"testing"
)

func build(t *testing.T, typ Type, vals ...Value) *Element {
	t.Helper()
	doc := mustNew(t, typ)
	prev := doc
	for i, v := range vals {
		key := ""
		if typ == DictType {
			key = string(rune('a' + i))
		}
		prev = mustAdd(t, prev, v.Type(), key, v)
	}
	return doc
}

func TestCompare(t *testing.T) {
	nested := build(t, ArrayType, Int32(1))
	nested2 := build(t, ArrayType, Int32(2))

	tests := []struct {
		name     string
		a, b     *Element
		expected int
	}{
		{"Array < Dict", build(t, ArrayType), build(t, DictType), -1},
		{"Empty == Empty", build(t, ArrayType), build(t, ArrayType), 0},
		{"Short < Long", build(t, ArrayType, Int32(1)), build(t, ArrayType, Int32(1), Int32(2)), -1},
		{"Null < Object", build(t, ArrayType, Null{}), build(t, ArrayType, Object{Doc: nested}), -1},
		{"Int32 < Int64", build(t, ArrayType, Int32(9)), build(t, ArrayType, Int64(1)), -1},
		{"Int32 values", build(t, ArrayType, Int32(1)), build(t, ArrayType, Int32(2)), -1},
		{"Int64 values", build(t, ArrayType, Int64(3)), build(t, ArrayType, Int64(3)), 0},
		{"Binary values", build(t, ArrayType, Binary("ab")), build(t, ArrayType, Binary("b")), -1},
		{"Char values", build(t, ArrayType, Char('b')), build(t, ArrayType, Char('a')), 1},
		{"Double values", build(t, ArrayType, Double(1.5)), build(t, ArrayType, Double(1.25)), 1},
		{"Keys", build(t, DictType, Int32(1)), build(t, DictType, Null{}, Int32(1)), 1},
		{"Nested", build(t, ArrayType, Object{Doc: nested}), build(t, ArrayType, Object{Doc: nested2}), -1},
		{"Nested equal", build(t, ArrayType, Object{Doc: nested}), build(t, ArrayType, Object{Doc: nested}), 0},
		{"nil", nil, build(t, ArrayType), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal documents hash differently")
			}
		})
	}
}

func TestHash(t *testing.T) {
	a := person(t)
	b := person(t)
	if a.Hash() != b.Hash() {
		t.Errorf("equal documents hash differently")
	}
	mustAdd(t, b, Int32Type, "Nr", Int32(11))
	if a.Hash() == b.Hash() {
		t.Errorf("different documents hash equally")
	}
	if build(t, ArrayType, Double(0)).Hash() != build(t, ArrayType, Double(math.Copysign(0, -1))).Hash() {
		t.Errorf("zero doubles hash differently")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Hash on nil did not panic")
		}
	}()
	var e *Element
	e.Hash()
}
