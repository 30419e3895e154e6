package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BobMarlon/Tny/endian"
	"github.com/BobMarlon/Tny/ir"
)

// Loads decodes a document from data.
//
// Decoding stops at the first truncated or corrupt element and the document
// decoded up to that point is returned; its Len counts only the elements
// read completely. An Object whose nested document is incomplete is dropped
// rather than linked with a partial document. Loads returns nil only if data
// is empty or its first byte is not an Array or Dict tag.
func Loads(data []byte, opts ...DecodeOption) *ir.Element {
	d := &decoder{data: data, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}
	if d.report != nil {
		*d.report = Report{}
	}
	if len(data) == 0 {
		return nil
	}
	t := ir.Type(data[0])
	if !t.IsContainer() {
		return nil
	}
	root, err := ir.New(t)
	if err != nil {
		return nil
	}
	d.pos = 1
	d.mark = 1
	complete := d.fill(root, 0)
	if d.report != nil {
		d.report.Consumed = d.mark
		d.report.Complete = complete
	}
	return root
}

// Decode reads all of r and decodes it with Loads.
func Decode(r io.Reader, opts ...DecodeOption) (*ir.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := Loads(data, opts...)
	if doc == nil {
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: empty input", ErrNotDocument)
		}
		return nil, fmt.Errorf("%w: leading tag %#02x", ErrNotDocument, data[0])
	}
	return doc, nil
}

type decoder struct {
	data     []byte
	pos      int
	mark     int
	maxDepth int
	report   *Report
}

// has reports whether n more bytes are available.
func (d *decoder) has(n uint64) bool {
	return n <= uint64(len(d.data)-d.pos)
}

func (d *decoder) readUint32() (uint32, bool) {
	if !d.has(4) {
		return 0, false
	}
	v := endian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, true
}

func (d *decoder) readUint64() (uint64, bool) {
	if !d.has(8) {
		return 0, false
	}
	v := endian.Uint64(d.data[d.pos:])
	d.pos += 8
	return v, true
}

// fill reads the element count and the elements of a document whose tag
// has already been consumed. It reports whether all declared elements were
// read.
func (d *decoder) fill(root *ir.Element, depth int) bool {
	declared, ok := d.readUint32()
	if !ok {
		return false
	}
	if depth == 0 {
		d.mark = d.pos
	}
	prev := root
	for range declared {
		e, ok := d.element(root, prev, depth)
		if !ok {
			return false
		}
		prev = e
		if depth == 0 {
			d.mark = d.pos
		}
	}
	return true
}

func (d *decoder) element(root, prev *ir.Element, depth int) (*ir.Element, bool) {
	if !d.has(1) {
		return nil, false
	}
	t := ir.Type(d.data[d.pos])
	d.pos++
	if !t.Valid() || t.IsContainer() {
		return nil, false
	}

	var key string
	if root.Type() == ir.DictType {
		n, ok := d.readUint32()
		if !ok || n < 2 || !d.has(uint64(n)) {
			return nil, false
		}
		k := d.data[d.pos : d.pos+int(n)]
		if k[n-1] != 0 || bytes.IndexByte(k[:n-1], 0) != -1 {
			return nil, false
		}
		key = string(k[:n-1])
		d.pos += int(n)
	}

	var v ir.Value
	switch t {
	case ir.NullType:
		v = ir.Null{}
	case ir.ObjectType:
		return d.object(prev, key, depth)
	case ir.BinaryType:
		n, ok := d.readUint32()
		if !ok || !d.has(uint64(n)) {
			return nil, false
		}
		v = ir.Binary(d.data[d.pos : d.pos+int(n)])
		d.pos += int(n)
	case ir.CharType:
		if !d.has(1) {
			return nil, false
		}
		v = ir.Char(d.data[d.pos])
		d.pos++
	case ir.Int32Type:
		n, ok := d.readUint32()
		if !ok {
			return nil, false
		}
		v = ir.Int32(n)
	case ir.Int64Type:
		n, ok := d.readUint64()
		if !ok {
			return nil, false
		}
		v = ir.Int64(n)
	case ir.DoubleType:
		if !d.has(8) {
			return nil, false
		}
		v = ir.Double(endian.Float64(d.data[d.pos:]))
		d.pos += 8
	}
	e, err := ir.Add(prev, t, key, v)
	if err != nil {
		return nil, false
	}
	return e, true
}

// object links an Object element holding an empty document and decodes the
// nested document directly into it. An incomplete nested document is
// unlinked again.
func (d *decoder) object(prev *ir.Element, key string, depth int) (*ir.Element, bool) {
	if depth+1 > d.maxDepth || !d.has(1) {
		return nil, false
	}
	t := ir.Type(d.data[d.pos])
	if !t.IsContainer() {
		return nil, false
	}
	d.pos++
	empty, err := ir.New(t)
	if err != nil {
		return nil, false
	}
	e, err := ir.Add(prev, ir.ObjectType, key, ir.Object{Doc: empty})
	if err != nil {
		return nil, false
	}
	if !d.fill(e.Doc(), depth+1) {
		ir.Remove(e)
		return nil, false
	}
	return e, true
}
