// Package codec encodes tny documents to their binary form and decodes them
// back.
//
// # Wire Format
//
// All multi-byte integers are little-endian regardless of the host.
//
//	Document = Tag(Array|Dict) Count:uint32 Element*
//	Element  = Tag [KeyLen:uint32 Key 0x00] Payload   (key only inside a Dict)
//
//	Null    -> empty
//	Object  -> Document
//	Binary  -> Length:uint32 bytes
//	Char    -> 1 byte
//	Int32   -> 4 bytes
//	Int64   -> 8 bytes
//	Double  -> IEEE-754 bits, 8 bytes
//
// KeyLen counts the terminating zero byte.
//
// # Encoding
//
// Dumps allocates exactly the cached size of the document and fills it in a
// single depth-first walk. If the tree turns out to be inconsistent with its
// cached metadata, for example an Object element whose document was freed,
// Dumps fails with ErrEncodeInconsistency and returns no bytes.
//
// # Decoding
//
// Loads never reads past the end of its input. When the input is truncated
// or corrupt it stops and returns the part of the document decoded so far,
// which contains only elements that were read completely. Only input whose
// first byte is not an Array or Dict tag yields nil.
//
//	doc := codec.Loads(data)
//	if doc == nil {
//	    // not a tny document
//	}
//
// Use WithReport to learn whether the input was decoded completely.
package codec
