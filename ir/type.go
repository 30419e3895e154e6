package ir

import "fmt"

// Type is the kind of an Element. Its numeric value is the tag written on
// the wire.
type Type uint8

const (
	NullType Type = iota
	ArrayType
	DictType
	ObjectType
	BinaryType
	CharType
	Int32Type
	Int64Type
	DoubleType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		ArrayType:  "Array",
		DictType:   "Dict",
		ObjectType: "Object",
		BinaryType: "Binary",
		CharType:   "Char",
		Int32Type:  "Int32",
		Int64Type:  "Int64",
		DoubleType: "Double",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Array":  ArrayType,
		"Dict":   DictType,
		"Object": ObjectType,
		"Binary": BinaryType,
		"Char":   CharType,
		"Int32":  Int32Type,
		"Int64":  Int64Type,
		"Double": DoubleType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		ArrayType,
		DictType,
		ObjectType,
		BinaryType,
		CharType,
		Int32Type,
		Int64Type,
		DoubleType,
	}
}

// Valid reports whether t is a known type tag.
func (t Type) Valid() bool {
	return t <= DoubleType
}

// IsContainer reports whether t may only appear as a document root.
func (t Type) IsContainer() bool {
	return t == ArrayType || t == DictType
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, DictType, ObjectType:
		return false
	default:
		return t.Valid()
	}
}
