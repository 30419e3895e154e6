// Package ir provides the in-memory document model for tny documents.
//
// # Overview
//
// A tny document is an ordered Array or a key-unique Dict holding values of
// the following types:
//
//   - NullType: no payload
//   - ObjectType: a nested document (Array or Dict)
//   - BinaryType: a byte slice
//   - CharType: a single byte
//   - Int32Type, Int64Type: unsigned 32/64-bit bit patterns
//   - DoubleType: an IEEE-754 double
//
// All nodes are Elements. The document itself is the root Element, of type
// ArrayType or DictType, and its children form a doubly linked chain that
// starts at the root: the first child follows the root, so iteration with
// HasNext and Next can begin at the document itself.
//
// # Building Documents
//
// Documents are created with New and extended with Add, which inserts after
// a given element:
//
//	doc, _ := ir.New(ir.DictType)
//	name, _ := doc.Add(ir.BinaryType, "Name", ir.Binary("John Doe"))
//	_, _ = name.Add(ir.Int32Type, "Nr", ir.Int32(10))
//
// In a Dict, adding a key that already exists overwrites the existing
// element in place. Embedding a document with an Object value always copies
// it:
//
//	arr, _ := ir.New(ir.ArrayType)
//	arr.Add(ir.ObjectType, "", ir.Object{Doc: doc})
//
// Remove unlinks an element; applied to a root it frees the whole document.
// Removed and freed elements are detached and rejected by Add.
//
// # Size Accounting
//
// Every root caches the number of bytes its encoding occupies (Size) and
// its number of children (Len). Both are maintained incrementally by every
// mutation. A document embedded in an Object element is linked to that
// element, and size changes inside it are applied to every enclosing
// document up to the top level, so the top-level Size is always exact
// without walking the tree.
//
// # Lookup
//
// At and Get find direct children by position or key, GetPath and ListPath
// resolve paths such as $.a[0].b across nested documents, and Path returns
// the path of an element.
//
// # Thread Safety
//
// Elements are not safe for concurrent use. Synchronize access externally or
// give each goroutine its own Copy.
//
// # Related Packages
//
//   - github.com/BobMarlon/Tny/codec - binary encoding and decoding
//   - github.com/BobMarlon/Tny/printer - diagnostic rendering
//   - github.com/BobMarlon/Tny/conv - conversion to and from JSON, YAML, CBOR
package ir
