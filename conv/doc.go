// Package conv converts tny documents to and from generic Go values and the
// JSON, YAML and CBOR encodings.
//
// Dicts become ordered maps (yaml.MapSlice) in ToAny and map[string]any in
// ToPlain; Arrays become []any. Binary values become strings, Chars
// one-character strings, Int32 and Int64 unsigned integers and Doubles
// float64.
//
// In the other direction null maps to Null, booleans to the Char values 0
// and 1, integers that fit 32 unsigned bits to Int32, other integers to
// Int64 (negative ones as their two's complement bits), floats to Double,
// strings and byte strings to Binary, and maps and lists to embedded
// documents. The top level value must be a map or a list.
//
// CBOR output is encoded deterministically, so map keys are sorted rather
// than kept in document order.
package conv
