package conv

import (
	"encoding"
	"fmt"
	"maps"
	"math"
	"math/big"
	"slices"

	"github.com/BobMarlon/Tny/ir"

	"github.com/goccy/go-yaml"
)

// FromAny builds a document from a generic Go value, which must be a map or
// a list.
func FromAny(v any) (*ir.Element, error) {
	t, ok := containerType(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotContainer, v)
	}
	doc, err := ir.New(t)
	if err != nil {
		return nil, err
	}
	if err := fillDoc(doc, v); err != nil {
		ir.Free(doc)
		return nil, err
	}
	return doc, nil
}

func containerType(v any) (ir.Type, bool) {
	switch v.(type) {
	case yaml.MapSlice, map[string]any, map[any]any:
		return ir.DictType, true
	case []any:
		return ir.ArrayType, true
	}
	return 0, false
}

func fillDoc(doc *ir.Element, v any) error {
	prev := doc
	add := func(key string, x any) error {
		e, err := addValue(prev, key, x)
		if err != nil {
			if key != "" {
				return fmt.Errorf("%s: %w", key, err)
			}
			return err
		}
		prev = e
		return nil
	}
	switch x := v.(type) {
	case []any:
		for i, item := range x {
			if err := add("", item); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	case yaml.MapSlice:
		for _, item := range x {
			if err := add(fmt.Sprint(item.Key), item.Value); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := add(k, x[k]); err != nil {
				return err
			}
		}
	case map[any]any:
		keys := make(map[string]any, len(x))
		for k, item := range x {
			keys[fmt.Sprint(k)] = item
		}
		for _, k := range slices.Sorted(maps.Keys(keys)) {
			if err := add(k, keys[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

// addValue adds x after prev. Maps and lists are filled in place inside an
// Object element holding an empty document.
func addValue(prev *ir.Element, key string, x any) (*ir.Element, error) {
	if t, ok := containerType(x); ok {
		empty, err := ir.New(t)
		if err != nil {
			return nil, err
		}
		e, err := ir.Add(prev, ir.ObjectType, key, ir.Object{Doc: empty})
		if err != nil {
			return nil, err
		}
		if err := fillDoc(e.Doc(), x); err != nil {
			ir.Remove(e)
			return nil, err
		}
		return e, nil
	}
	v, err := scalar(x)
	if err != nil {
		return nil, err
	}
	return ir.Add(prev, v.Type(), key, v)
}

func scalar(x any) (ir.Value, error) {
	switch v := x.(type) {
	case nil:
		return ir.Null{}, nil
	case bool:
		if v {
			return ir.Char(1), nil
		}
		return ir.Char(0), nil
	case int:
		return signed(int64(v)), nil
	case int8:
		return signed(int64(v)), nil
	case int16:
		return signed(int64(v)), nil
	case int32:
		return signed(int64(v)), nil
	case int64:
		return signed(v), nil
	case uint:
		return unsigned(uint64(v)), nil
	case uint8:
		return unsigned(uint64(v)), nil
	case uint16:
		return unsigned(uint64(v)), nil
	case uint32:
		return unsigned(uint64(v)), nil
	case uint64:
		return unsigned(v), nil
	case float32:
		return ir.Double(v), nil
	case float64:
		return ir.Double(v), nil
	case string:
		return ir.Binary(v), nil
	case []byte:
		return ir.Binary(v), nil
	case big.Int:
		return bigInt(&v)
	case *big.Int:
		return bigInt(v)
	case encoding.TextMarshaler:
		d, err := v.MarshalText()
		if err != nil {
			return nil, err
		}
		return ir.Binary(d), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
}

func signed(v int64) ir.Value {
	if v < 0 {
		return ir.Int64(uint64(v))
	}
	return unsigned(uint64(v))
}

func unsigned(v uint64) ir.Value {
	if v <= math.MaxUint32 {
		return ir.Int32(v)
	}
	return ir.Int64(v)
}

func bigInt(v *big.Int) (ir.Value, error) {
	switch {
	case v.IsUint64():
		return unsigned(v.Uint64()), nil
	case v.IsInt64():
		return signed(v.Int64()), nil
	}
	return nil, fmt.Errorf("%w: integer %s does not fit 64 bits", ErrUnsupported, v)
}
