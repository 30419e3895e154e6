// Package libdiff computes structural differences between tny documents.
//
// # Usage
//
//	changes := libdiff.Diff(from, to)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
// Dict elements are matched by key and Array elements by position in a
// longest common subsequence of their contents, both computed with
// github.com/sergi/go-diff. Matched elements holding documents are compared
// recursively; a delete immediately followed by an insert at the same
// position of an Array is reported as a replace.
//
// Change paths are written like $.list[2].Nr. Delete and Replace paths
// locate the element in the from document, Insert paths in the to
// document; github.com/BobMarlon/Tny/patch applies them in that frame.
//
// # Related Packages
//
//   - github.com/BobMarlon/Tny/ir - document model
//   - github.com/BobMarlon/Tny/patch - applying changes
package libdiff
