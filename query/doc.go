// Package query evaluates github.com/expr-lang/expr expressions against tny
// documents.
//
// Expressions see the generic form of the document (see
// github.com/BobMarlon/Tny/conv.ToPlain) as doc, any caller supplied
// variables, and these functions:
//
//	getpath(path)   generic value at path, or nil
//	listpath(path)  generic values matched by a path with [*] steps
//	typeof(path)    type name of the element at path, or ""
//	size()          encoded size of the document in bytes
//	getenv(name)    environment variable
//
// Filter additionally binds it, key and index to each child in turn.
package query
