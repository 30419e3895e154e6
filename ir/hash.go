package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared by all hashes in a process so that equal elements hash
// equally. Hashes are not stable across processes.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of e consistent with Equal: a root hashes its
// whole document, other elements their type, key and value.
// It panics if e is nil.
func (e *Element) Hash() uint64 {
	if e == nil {
		panic("ir: Hash called on nil element")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(e.typ))

	var b [8]byte
	if e.IsRoot() {
		for c := e.next; c != nil; c = c.next {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
		return h.Sum64()
	}
	h.WriteString(e.key)
	h.WriteByte(0)

	switch x := e.value.(type) {
	case Object:
		if x.Doc != nil {
			binary.LittleEndian.PutUint64(b[:], x.Doc.Hash())
			h.Write(b[:])
		}
	case Binary:
		h.Write(x)
	case Char:
		h.WriteByte(byte(x))
	case Int32:
		binary.LittleEndian.PutUint32(b[:4], uint32(x))
		h.Write(b[:4])
	case Int64:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
		h.Write(b[:])
	case Double:
		f := float64(x)
		if f == 0 {
			f = 0 // -0 == 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	}
	return h.Sum64()
}
