package ir

import (
	"bytes"
	"fmt"
	"strings"
)

// New creates an empty document of type t, which must be ArrayType or
// DictType.
func New(t Type) (*Element, error) {
	return Add(nil, t, "", nil)
}

// Add inserts a new element of type t immediately after prev and returns it.
//
// If prev is nil, t must be ArrayType or DictType and Add creates a new
// document; key and v are ignored. Otherwise t must be a value type and v
// must be a Value of that type (v may be nil for NullType). Elements of a
// Dict document need a non-empty key without zero bytes; elements of an
// Array document must not have one.
//
// Adding a key already present in a Dict replaces the value of the existing
// element in place and returns that element; its position is unchanged.
//
// Object values are deep copied from the document containing v.Doc, so
// later changes to the source do not affect the embedded copy.
//
// On error the document is left unchanged.
func Add(prev *Element, t Type, key string, v Value) (*Element, error) {
	if prev == nil {
		if !t.IsContainer() {
			return nil, fmt.Errorf("%w: %s cannot start a document", ErrInvalidStructure, t)
		}
		e := &Element{typ: t, size: headerSize}
		e.root = e
		return e, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown type %d", ErrInvalidStructure, t)
	}
	if t.IsContainer() {
		return nil, fmt.Errorf("%w: %s cannot be nested, embed it as %s", ErrInvalidStructure, t, ObjectType)
	}
	root := prev.root
	if root == nil {
		return nil, ErrDetached
	}
	if err := checkKey(root, key); err != nil {
		return nil, err
	}
	val, err := ownValue(t, v)
	if err != nil {
		return nil, err
	}

	if root.typ == DictType {
		if old := root.Get(key); old != nil {
			replace(old, t, val)
			return old, nil
		}
	}

	e := &Element{typ: t, key: key, value: val, root: root}
	e.prev = prev
	e.next = prev.next
	prev.next = e
	if e.next != nil {
		e.next.prev = e
	}
	root.count++
	propagate(root, e.contribution())
	adopt(e)
	return e, nil
}

// Add inserts a new element after e. See Add.
func (e *Element) Add(t Type, key string, v Value) (*Element, error) {
	return Add(e, t, key, v)
}

func checkKey(root *Element, key string) error {
	if root.typ == ArrayType {
		if key != "" {
			return fmt.Errorf("%w: %s elements have no key, got %q", ErrInvalidStructure, ArrayType, key)
		}
		return nil
	}
	if key == "" {
		return fmt.Errorf("%w: %s elements need a key", ErrInvalidStructure, DictType)
	}
	if strings.IndexByte(key, 0) != -1 {
		return fmt.Errorf("%w: key %q contains a zero byte", ErrInvalidStructure, key)
	}
	if uint64(len(key))+1 > maxWireLen {
		return fmt.Errorf("%w: key of %d bytes", ErrAllocation, len(key))
	}
	return nil
}

// ownValue checks v against t and returns the value to store, copied so
// that the element exclusively owns it.
func ownValue(t Type, v Value) (Value, error) {
	if v == nil {
		if t == NullType {
			return Null{}, nil
		}
		return nil, fmt.Errorf("%w: missing value for %s", ErrInvalidStructure, t)
	}
	if v.Type() != t {
		return nil, fmt.Errorf("%w: %s value for %s element", ErrInvalidStructure, v.Type(), t)
	}
	switch x := v.(type) {
	case Object:
		if x.Doc == nil || x.Doc.root == nil {
			return nil, fmt.Errorf("%w: %s without a document", ErrInvalidStructure, ObjectType)
		}
		return Object{Doc: copyDoc(x.Doc.root)}, nil
	case Binary:
		if uint64(len(x)) > maxWireLen {
			return nil, fmt.Errorf("%w: binary of %d bytes", ErrAllocation, len(x))
		}
		return Binary(bytes.Clone([]byte(x))), nil
	}
	return v, nil
}

// replace installs a new value on an existing element, releasing the old
// one.
func replace(e *Element, t Type, v Value) {
	delta := -e.contribution()
	release(e)
	e.typ = t
	e.value = v
	delta += e.contribution()
	propagate(e.root, delta)
	adopt(e)
}

// adopt links an embedded document to the element holding it so that size
// changes inside it reach the enclosing documents.
func adopt(e *Element) {
	if o, ok := e.value.(Object); ok && o.Doc != nil {
		o.Doc.holder = e
	}
}

// release frees the value owned by e.
func release(e *Element) {
	if o, ok := e.value.(Object); ok && o.Doc != nil {
		o.Doc.holder = nil
		free(o.Doc)
	}
	e.value = nil
}

// Copy returns a deep copy of the document containing src. The copy is
// independent of src and of any document embedding it. Copy returns nil if
// src is nil or detached.
func Copy(src *Element) *Element {
	if src == nil || src.root == nil {
		return nil
	}
	return copyDoc(src.root)
}

func copyDoc(r *Element) *Element {
	dst := &Element{typ: r.typ, count: r.count, size: r.size}
	dst.root = dst
	tail := dst
	for e := r.next; e != nil; e = e.next {
		c := &Element{typ: e.typ, key: e.key, root: dst, prev: tail}
		switch x := e.value.(type) {
		case Object:
			if x.Doc != nil {
				c.value = Object{Doc: copyDoc(x.Doc)}
				adopt(c)
			} else {
				c.value = x
			}
		case Binary:
			c.value = Binary(bytes.Clone([]byte(x)))
		default:
			c.value = x
		}
		tail.next = c
		tail = c
	}
	return dst
}

// Remove detaches e from its document and releases its value. If e is a
// document root the whole document is freed, see Free. Removing a detached
// element does nothing.
func Remove(e *Element) {
	if e == nil || e.root == nil {
		return
	}
	if e.root == e {
		free(e)
		return
	}
	root := e.root
	e.prev.next = e.next
	if e.next != nil {
		e.next.prev = e.prev
	}
	root.count--
	propagate(root, -e.contribution())
	release(e)
	e.prev, e.next, e.root = nil, nil, nil
}

// Free releases the document containing e and everything it owns. All of
// its elements become detached.
//
// If the document is embedded in an Object element, that element remains in
// its container without a document, and encoding the enclosing document
// fails until the element is removed or overwritten.
func Free(e *Element) {
	if e == nil || e.root == nil {
		return
	}
	free(e.root)
}

func free(r *Element) {
	if h := r.holder; h != nil {
		r.holder = nil
		h.value = Object{}
		if h.root != nil {
			propagate(h.root, -r.size)
		}
	}
	for e := r.next; e != nil; {
		next := e.next
		release(e)
		e.prev, e.next, e.root = nil, nil, nil
		e = next
	}
	r.next = nil
	r.root = nil
	r.count = 0
	r.size = 0
}
