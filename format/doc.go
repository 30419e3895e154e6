// Package format names the encodings tny documents can be read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//		return err
//	}
//	name := "doc" + f.Suffix()
//
// The binary encoding is TnyFormat; the others are handled by
// github.com/BobMarlon/Tny/conv.
package format
