package ir

import "math"

// Value is the payload of a non-root Element. The concrete types are Null,
// Object, Binary, Char, Int32, Int64 and Double.
type Value interface {
	Type() Type
	payloadSize() int
}

type (
	// Null has no payload.
	Null struct{}

	// Object embeds a document. Adding an Object deep copies the document
	// containing Doc; the stored Object always refers to a document owned
	// by its element.
	Object struct{ Doc *Element }

	Binary []byte
	Char   byte
	Int32  uint32
	Int64  uint64
	Double float64
)

func (Null) Type() Type   { return NullType }
func (Object) Type() Type { return ObjectType }
func (Binary) Type() Type { return BinaryType }
func (Char) Type() Type   { return CharType }
func (Int32) Type() Type  { return Int32Type }
func (Int64) Type() Type  { return Int64Type }
func (Double) Type() Type { return DoubleType }

func (Null) payloadSize() int { return 0 }

func (o Object) payloadSize() int {
	if o.Doc == nil {
		return 0
	}
	return o.Doc.size
}

func (b Binary) payloadSize() int { return lenSize + len(b) }
func (Char) payloadSize() int     { return 1 }
func (Int32) payloadSize() int    { return 4 }
func (Int64) payloadSize() int    { return 8 }
func (Double) payloadSize() int   { return 8 }

const (
	tagSize    = 1
	lenSize    = 4
	headerSize = tagSize + lenSize
)

const maxWireLen uint64 = math.MaxUint32
