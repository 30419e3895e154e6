package ir

import "iter"

// At returns the child at position i of the document containing e, or nil
// if i is out of range.
func (e *Element) At(i int) *Element {
	if e.root == nil || i < 0 {
		return nil
	}
	n := 0
	for c := e.root.next; c != nil; c = c.next {
		if n == i {
			return c
		}
		n++
	}
	return nil
}

// Get returns the child of the document containing e whose key is exactly
// key, or nil.
func (e *Element) Get(key string) *Element {
	if e.root == nil || key == "" {
		return nil
	}
	for c := e.root.next; c != nil; c = c.next {
		if c.key == key {
			return c
		}
	}
	return nil
}

// HasNext reports whether an element follows e in its sibling chain. The
// first child follows the root.
func (e *Element) HasNext() bool {
	return e.next != nil
}

// Next returns the element following e, or nil.
func (e *Element) Next() *Element {
	return e.next
}

// All returns an iterator over the children of the document containing e
// and their positions.
func (e *Element) All() iter.Seq2[int, *Element] {
	return func(yield func(int, *Element) bool) {
		if e.root == nil {
			return
		}
		i := 0
		for c := e.root.next; c != nil; c = c.next {
			if !yield(i, c) {
				return
			}
			i++
		}
	}
}

// Index returns the position of e among its siblings, or -1 for roots and
// detached elements.
func (e *Element) Index() int {
	if e.root == nil || e.root == e {
		return -1
	}
	i := 0
	for c := e.root.next; c != nil && c != e; c = c.next {
		i++
	}
	return i
}
