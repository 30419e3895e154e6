package libdiff

import (
	"fmt"
	"strings"

	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/printer"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Change is one difference between two documents. From is nil for Insert
// and To is nil for Delete. A whole document appears as an Object value.
//
// Index is the position of the element in its container, in the same frame
// as Path; it orders Dict inserts.
type Change struct {
	Op    Op
	Path  string
	Index int
	From  ir.Value
	To    ir.Value
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return "+ " + c.Path + ": " + valueString(c.To)
	case Delete:
		return "- " + c.Path + ": " + valueString(c.From)
	default:
		return "~ " + c.Path + ": " + valueString(c.From) + " -> " + valueString(c.To)
	}
}

// valueString renders a value on one line.
func valueString(v ir.Value) string {
	switch x := v.(type) {
	case nil:
		return "<none>"
	case ir.Object:
		if x.Doc == nil {
			return "<freed>"
		}
		open, closing := "[", "]"
		if x.Doc.Type() == ir.DictType {
			open, closing = "{", "}"
		}
		parts := []string{}
		for _, e := range x.Doc.All() {
			s := valueString(e.Value())
			if e.Key() != "" {
				s = e.Key() + ": " + s
			}
			parts = append(parts, s)
		}
		return open + strings.Join(parts, ", ") + closing
	}
	doc, err := ir.New(ir.ArrayType)
	if err != nil {
		return err.Error()
	}
	defer ir.Free(doc)
	if _, err := doc.Add(v.Type(), "", v); err != nil {
		return err.Error()
	}
	return strings.TrimSuffix(strings.TrimPrefix(printer.String(doc), "[0]: "), "\n")
}
