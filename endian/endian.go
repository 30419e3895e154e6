// Package endian converts 32- and 64-bit scalars between host byte order and
// the little-endian order used on the wire by tny documents.
//
// The host order is detected once, on first use, and never changes for the
// life of the process. All functions are pure with respect to their
// arguments and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
	"math/bits"
	"sync"
)

// Order is a byte order.
type Order int

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "<unknown order>"
	}
}

var host = sync.OnceValue(func() Order {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0100)
	if probe[0] == 0x00 {
		return LittleEndian
	}
	return BigEndian
})

// Host returns the byte order of the machine running the process.
func Host() Order {
	return host()
}

// Swap32 converts v between host order and wire order. Applying it twice
// returns v.
func Swap32(o Order, v uint32) uint32 {
	if o == LittleEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

// Swap64 is Swap32 for 64-bit values.
func Swap64(o Order, v uint64) uint64 {
	if o == LittleEndian {
		return v
	}
	return bits.ReverseBytes64(v)
}

// PutUint32 stores v in b[:4] in wire order.
func PutUint32(b []byte, v uint32) {
	binary.NativeEndian.PutUint32(b, Swap32(Host(), v))
}

// Uint32 reads a wire order value from b[:4].
func Uint32(b []byte) uint32 {
	return Swap32(Host(), binary.NativeEndian.Uint32(b))
}

// PutUint64 stores v in b[:8] in wire order.
func PutUint64(b []byte, v uint64) {
	binary.NativeEndian.PutUint64(b, Swap64(Host(), v))
}

// Uint64 reads a wire order value from b[:8].
func Uint64(b []byte) uint64 {
	return Swap64(Host(), binary.NativeEndian.Uint64(b))
}

// PutFloat64 stores the IEEE-754 bit pattern of f in b[:8], swapped as one
// 64-bit unit.
func PutFloat64(b []byte, f float64) {
	PutUint64(b, math.Float64bits(f))
}

// Float64 reads a value written by PutFloat64.
func Float64(b []byte) float64 {
	return math.Float64frombits(Uint64(b))
}
