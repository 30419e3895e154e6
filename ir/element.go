package ir

// Element is a node of a tny document. A document is the root Element of
// kind ArrayType or DictType; every other Element is a child value linked
// after its root in insertion order.
//
// Elements are created and changed only through New, Add, Copy, Remove and
// Free. The zero Element is detached and unusable.
type Element struct {
	typ   Type
	key   string
	value Value

	prev, next *Element
	root       *Element

	// document root only
	count  int
	size   int
	holder *Element
}

// Type returns the kind of e.
func (e *Element) Type() Type {
	return e.typ
}

// Key returns the key of e, or "" when its container is an Array or e is a
// root.
func (e *Element) Key() string {
	return e.key
}

// Value returns the payload of e, or nil for a document root.
func (e *Element) Value() Value {
	return e.value
}

// Root returns the document containing e, or nil if e is detached.
func (e *Element) Root() *Element {
	return e.root
}

// IsRoot reports whether e is an attached document root.
func (e *Element) IsRoot() bool {
	return e.root == e
}

// Detached reports whether e was removed or its document freed.
func (e *Element) Detached() bool {
	return e.root == nil
}

// Len returns the number of children of the document containing e.
func (e *Element) Len() int {
	if e.root == nil {
		return 0
	}
	return e.root.count
}

// Size returns the cached number of bytes the encoding of the document
// containing e occupies.
func (e *Element) Size() int {
	if e.root == nil {
		return 0
	}
	return e.root.size
}

// Parent returns the Object element whose value is the document containing
// e, or nil if that document is not embedded.
func (e *Element) Parent() *Element {
	if e.root == nil {
		return nil
	}
	return e.root.holder
}

func (e *Element) Bytes() []byte {
	b, _ := e.value.(Binary)
	return b
}

func (e *Element) Char() byte {
	c, _ := e.value.(Char)
	return byte(c)
}

func (e *Element) Uint32() uint32 {
	v, _ := e.value.(Int32)
	return uint32(v)
}

func (e *Element) Uint64() uint64 {
	v, _ := e.value.(Int64)
	return uint64(v)
}

func (e *Element) Float64() float64 {
	v, _ := e.value.(Double)
	return float64(v)
}

// Doc returns the document embedded by an Object element.
func (e *Element) Doc() *Element {
	o, _ := e.value.(Object)
	return o.Doc
}

// contribution is the number of bytes e adds to the encoding of its
// document.
func (e *Element) contribution() int {
	return tagSize + keySize(e.root, e.key) + e.value.payloadSize()
}

func keySize(root *Element, key string) int {
	if root.typ != DictType {
		return 0
	}
	return lenSize + len(key) + 1
}

// propagate applies delta to the cached size of root and of every document
// embedding it, up to the top level.
func propagate(root *Element, delta int) {
	for r := root; r != nil; {
		r.size += delta
		h := r.holder
		if h == nil {
			return
		}
		r = h.root
	}
}
