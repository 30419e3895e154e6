package conv

import (
	"unicode/utf8"

	"github.com/BobMarlon/Tny/ir"

	"github.com/goccy/go-yaml"
)

// ToAny returns the generic form of e. A document root converts to its
// whole container, with Dict order kept in a yaml.MapSlice; any other
// element converts to its value.
func ToAny(e *ir.Element) any {
	return toGo(e, ordered)
}

// ToPlain is like ToAny but converts Dicts to map[string]any.
func ToPlain(e *ir.Element) any {
	return toGo(e, plain)
}

type mode int

const (
	ordered mode = iota
	plain
	// binary keeps Binary values that are not valid UTF-8 as []byte.
	binary
)

func toGo(e *ir.Element, m mode) any {
	if e == nil || e.Detached() {
		return nil
	}
	if e.IsRoot() {
		return docToGo(e, m)
	}
	return valueToGo(e.Value(), m)
}

func docToGo(root *ir.Element, m mode) any {
	switch root.Type() {
	case ir.ArrayType:
		res := make([]any, 0, root.Len())
		for _, e := range root.All() {
			res = append(res, valueToGo(e.Value(), m))
		}
		return res
	case ir.DictType:
		if m == ordered {
			res := make(yaml.MapSlice, 0, root.Len())
			for _, e := range root.All() {
				res = append(res, yaml.MapItem{Key: e.Key(), Value: valueToGo(e.Value(), m)})
			}
			return res
		}
		res := make(map[string]any, root.Len())
		for _, e := range root.All() {
			res[e.Key()] = valueToGo(e.Value(), m)
		}
		return res
	}
	return nil
}

func valueToGo(v ir.Value, m mode) any {
	switch x := v.(type) {
	case ir.Object:
		if x.Doc == nil {
			return nil
		}
		return docToGo(x.Doc, m)
	case ir.Binary:
		if m == binary && !utf8.Valid(x) {
			return []byte(x)
		}
		return string(x)
	case ir.Char:
		return string([]byte{byte(x)})
	case ir.Int32:
		return uint32(x)
	case ir.Int64:
		return uint64(x)
	case ir.Double:
		return float64(x)
	}
	return nil
}

// ValueToAny returns the generic form of v as ToAny does.
func ValueToAny(v ir.Value) any {
	return valueToGo(v, ordered)
}
