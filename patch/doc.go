// Package patch changes tny documents by libdiff changes, RFC 6902 JSON
// patches and RFC 7386 merge patches.
//
// Apply replays the output of libdiff.Diff exactly. JSON and merge patches
// are applied to the JSON form of a document (see
// github.com/BobMarlon/Tny/conv) with github.com/evanphx/json-patch, so
// their results carry the generic type mapping and Dict keys in sorted
// order.
package patch
