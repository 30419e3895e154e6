// Package printer renders tny documents as indented text for inspection.
//
// # Usage
//
//	// Print a document
//	err := printer.Print(doc, os.Stdout)
//
//	// Print with colors and two-space indentation
//	err := printer.Print(doc, os.Stdout,
//		printer.WithColors(printer.NewColors()),
//		printer.WithIndent("  "))
//
// Array elements print as "[i]: value" and Dict elements as "key: value",
// one per line. An embedded document starts on the line after its element
// and is indented one level deeper.
//
// # Related Packages
//
//   - github.com/BobMarlon/Tny/ir - document model
//   - github.com/BobMarlon/Tny/conv - JSON, YAML and CBOR output
package printer
