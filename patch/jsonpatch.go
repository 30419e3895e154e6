package patch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BobMarlon/Tny/conv"
	"github.com/BobMarlon/Tny/debug"
	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// JSONPatch applies an RFC 6902 patch to the JSON form of the document
// containing doc and returns the result as a new document.
func JSONPatch(doc *ir.Element, patch []byte) (*ir.Element, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops called on %s\n", len(ops), doc.Path())
	}
	d, err := conv.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return conv.FromJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to the JSON form of the
// document containing doc.
func MergePatch(doc *ir.Element, patch []byte) (*ir.Element, error) {
	d, err := conv.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return conv.FromJSON(out)
}

// CreateMergePatch returns the merge patch turning the JSON form of from
// into that of to.
func CreateMergePatch(from, to *ir.Element) ([]byte, error) {
	a, err := conv.ToJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := conv.ToJSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

// ToJSONPatch renders changes as an RFC 6902 patch, ordered as Apply
// applies them.
func ToJSONPatch(changes []libdiff.Change) ([]byte, error) {
	var replaces, deletes, inserts []yaml.MapSlice
	for _, c := range changes {
		ptr, err := pointer(c.Path)
		if err != nil {
			return nil, err
		}
		switch c.Op {
		case libdiff.Replace:
			replaces = append(replaces, yaml.MapSlice{
				{Key: "op", Value: "replace"},
				{Key: "path", Value: ptr},
				{Key: "value", Value: conv.ValueToAny(c.To)},
			})
		case libdiff.Delete:
			deletes = append(deletes, yaml.MapSlice{
				{Key: "op", Value: "remove"},
				{Key: "path", Value: ptr},
			})
		case libdiff.Insert:
			inserts = append(inserts, yaml.MapSlice{
				{Key: "op", Value: "add"},
				{Key: "path", Value: ptr},
				{Key: "value", Value: conv.ValueToAny(c.To)},
			})
		}
	}
	ops := make([]yaml.MapSlice, 0, len(changes))
	ops = append(ops, replaces...)
	for i := len(deletes) - 1; i >= 0; i-- {
		ops = append(ops, deletes[i])
	}
	ops = append(ops, inserts...)
	return yaml.MarshalWithOptions(ops, yaml.JSON())
}

// pointer converts a path such as $.a[1] to the JSON pointer /a/1.
func pointer(path string) (string, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPath, err)
	}
	var buf strings.Builder
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			return "", fmt.Errorf("%w: %s selects more than one element", ErrPath, path)
		case x.Field != nil:
			buf.WriteString("/" + strings.NewReplacer("~", "~0", "/", "~1").Replace(*x.Field))
		case x.Index != nil:
			buf.WriteString("/" + strconv.Itoa(*x.Index))
		}
	}
	return buf.String(), nil
}
