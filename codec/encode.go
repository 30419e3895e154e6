package codec

import (
	"fmt"
	"io"

	"github.com/BobMarlon/Tny/endian"
	"github.com/BobMarlon/Tny/ir"
)

// Dumps returns the binary encoding of the document containing doc.
func Dumps(doc *ir.Element) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrEncodeInconsistency)
	}
	root := doc.Root()
	if root == nil {
		return nil, ir.ErrDetached
	}
	enc := &encoder{buf: make([]byte, root.Size())}
	if err := enc.doc(root); err != nil {
		return nil, err
	}
	if enc.pos != len(enc.buf) {
		return nil, fmt.Errorf("%w: encoded %d bytes, cached size is %d", ErrEncodeInconsistency, enc.pos, len(enc.buf))
	}
	return enc.buf, nil
}

// Encode writes the binary encoding of the document containing doc to w.
func Encode(doc *ir.Element, w io.Writer) error {
	d, err := Dumps(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

type encoder struct {
	buf []byte
	pos int
}

// next reserves n bytes of the output buffer.
func (enc *encoder) next(n int) ([]byte, error) {
	if n > len(enc.buf)-enc.pos {
		return nil, fmt.Errorf("%w: encoding exceeds cached size %d", ErrEncodeInconsistency, len(enc.buf))
	}
	b := enc.buf[enc.pos : enc.pos+n]
	enc.pos += n
	return b, nil
}

func (enc *encoder) doc(root *ir.Element) error {
	b, err := enc.next(5)
	if err != nil {
		return err
	}
	b[0] = byte(root.Type())
	endian.PutUint32(b[1:], uint32(root.Len()))

	n := 0
	for _, e := range root.All() {
		if err := enc.element(root.Type(), e); err != nil {
			return err
		}
		n++
	}
	if n != root.Len() {
		return fmt.Errorf("%w: %s has %d elements, count is %d", ErrEncodeInconsistency, root.Path(), n, root.Len())
	}
	return nil
}

func (enc *encoder) element(container ir.Type, e *ir.Element) error {
	b, err := enc.next(1)
	if err != nil {
		return err
	}
	b[0] = byte(e.Type())

	if container == ir.DictType {
		key := e.Key()
		b, err := enc.next(4 + len(key) + 1)
		if err != nil {
			return err
		}
		endian.PutUint32(b, uint32(len(key)+1))
		copy(b[4:], key)
		b[len(b)-1] = 0
	}

	switch v := e.Value().(type) {
	case ir.Null:
	case ir.Object:
		if v.Doc == nil {
			return fmt.Errorf("%w: %s has no document", ErrEncodeInconsistency, e.Path())
		}
		return enc.doc(v.Doc)
	case ir.Binary:
		b, err := enc.next(4 + len(v))
		if err != nil {
			return err
		}
		endian.PutUint32(b, uint32(len(v)))
		copy(b[4:], v)
	case ir.Char:
		b, err := enc.next(1)
		if err != nil {
			return err
		}
		b[0] = byte(v)
	case ir.Int32:
		b, err := enc.next(4)
		if err != nil {
			return err
		}
		endian.PutUint32(b, uint32(v))
	case ir.Int64:
		b, err := enc.next(8)
		if err != nil {
			return err
		}
		endian.PutUint64(b, uint64(v))
	case ir.Double:
		b, err := enc.next(8)
		if err != nil {
			return err
		}
		endian.PutFloat64(b, float64(v))
	default:
		return fmt.Errorf("%w: %s has no value", ErrEncodeInconsistency, e.Path())
	}
	return nil
}
