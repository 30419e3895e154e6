package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/BobMarlon/Tny/codec"
	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func person(t *testing.T) *ir.Element {
	t.Helper()
	doc, err := ir.New(ir.DictType)
	require.NoError(t, err)
	e, err := doc.Add(ir.BinaryType, "Name", ir.Binary("John Doe"))
	require.NoError(t, err)
	_, err = e.Add(ir.Int32Type, "Nr", ir.Int32(10))
	require.NoError(t, err)
	return doc
}

// sample holds only values whose generic form maps back to the same type.
func sample(t *testing.T) *ir.Element {
	t.Helper()
	list, err := ir.New(ir.ArrayType)
	require.NoError(t, err)
	prev := list
	for _, v := range []ir.Value{
		ir.Int32(math.MaxUint32),
		ir.Int64(math.MaxUint32 + 1),
		ir.Int64(math.MaxUint64),
		ir.Double(13.37),
		ir.Null{},
		ir.Binary("text"),
		ir.Object{Doc: person(t)},
	} {
		prev, err = prev.Add(v.Type(), "", v)
		require.NoError(t, err)
	}
	doc := person(t)
	_, err = doc.At(1).Add(ir.ObjectType, "list", ir.Object{Doc: list})
	require.NoError(t, err)
	return doc
}

func TestToAny(t *testing.T) {
	doc := person(t)
	_, err := doc.Add(ir.CharType, "Init", ir.Char('J'))
	require.NoError(t, err)
	want := yaml.MapSlice{
		{Key: "Init", Value: "J"},
		{Key: "Name", Value: "John Doe"},
		{Key: "Nr", Value: uint32(10)},
	}
	if diff := cmp.Diff(want, ToAny(doc)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	wantPlain := map[string]any{"Init": "J", "Name": "John Doe", "Nr": uint32(10)}
	require.Equal(t, uint32(10), ToPlain(doc.Get("Nr")))
	require.Equal(t, wantPlain, ToPlain(doc))
	require.Nil(t, ToAny(nil))
}

func TestFromAny(t *testing.T) {
	doc, err := FromAny(map[string]any{
		"b":    true,
		"f":    false,
		"neg":  -1,
		"big":  uint64(1) << 40,
		"list": []any{int8(1), "x", nil, 2.5, []byte{0, 1}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "big", "f", "list", "neg"}, keys(doc))
	require.Equal(t, ir.Char(1), doc.Get("b").Value())
	require.Equal(t, ir.Char(0), doc.Get("f").Value())
	require.Equal(t, ir.Int64(math.MaxUint64), doc.Get("neg").Value())
	require.Equal(t, ir.Int64(1<<40), doc.Get("big").Value())

	list := doc.Get("list").Doc()
	require.Equal(t, ir.ArrayType, list.Type())
	got := []ir.Value{}
	for _, e := range list.All() {
		got = append(got, e.Value())
	}
	require.Equal(t, []ir.Value{ir.Int32(1), ir.Binary("x"), ir.Null{}, ir.Double(2.5), ir.Binary{0, 1}}, got)

	d, err := codec.Dumps(doc)
	require.NoError(t, err)
	require.Len(t, d, doc.Size())
}

func keys(doc *ir.Element) []string {
	res := []string{}
	for _, e := range doc.All() {
		res = append(res, e.Key())
	}
	return res
}

func TestFromAnyErrors(t *testing.T) {
	_, err := FromAny("scalar")
	require.ErrorIs(t, err, ErrNotContainer)

	_, err = FromAny([]any{struct{}{}})
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = FromAny(yaml.MapSlice{{Key: "", Value: 1}})
	require.ErrorIs(t, err, ir.ErrInvalidStructure)

	_, err = FromAny(map[string]any{"a": map[string]any{"b\x00": 1}})
	require.ErrorIs(t, err, ir.ErrInvalidStructure)
}

func TestYAMLOrder(t *testing.T) {
	doc, err := FromYAML([]byte("z: 1\na: two\nm:\n  - 3\n  - k: v\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a", "m"}, keys(doc))
	m := doc.Get("m").Doc()
	require.Equal(t, 2, m.Len())
	require.Equal(t, "v", string(m.At(1).Doc().Get("k").Bytes()))
}

func TestRoundTrips(t *testing.T) {
	for _, f := range []format.Format{format.TnyFormat, format.JSONFormat, format.YAMLFormat, format.CBORFormat} {
		t.Run(f.String(), func(t *testing.T) {
			doc := sample(t)
			if f.IsCBOR() {
				doc = sorted(t, doc)
			}
			d, err := Dump(doc, f)
			require.NoError(t, err)
			got, err := Load(d, f)
			require.NoError(t, err)
			if !ir.Equal(doc, got) {
				t.Errorf("round trip through %s differs:\n%s", f, d)
			}
		})
	}
}

// sorted rebuilds doc through a plain map, which orders Dict keys.
func sorted(t *testing.T, doc *ir.Element) *ir.Element {
	t.Helper()
	res, err := FromAny(ToPlain(doc))
	require.NoError(t, err)
	return res
}

func TestJSONInput(t *testing.T) {
	doc, err := Load([]byte(`{"Name": "John Doe", "Nr": 10, "tags": ["a", "b"], "x": null}`), format.JSONFormat)
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Nr", "tags", "x"}, keys(doc))
	require.Equal(t, uint32(10), doc.Get("Nr").Uint32())
	require.Equal(t, ir.NullType, doc.Get("x").Type())

	_, err = Load([]byte(`"just a string"`), format.JSONFormat)
	require.ErrorIs(t, err, ErrNotContainer)
}

func TestCBORBinary(t *testing.T) {
	doc, err := ir.New(ir.ArrayType)
	require.NoError(t, err)
	_, err = doc.Add(ir.BinaryType, "", ir.Binary{0xff, 0xfe})
	require.NoError(t, err)
	d, err := ToCBOR(doc)
	require.NoError(t, err)
	got, err := FromCBOR(d)
	require.NoError(t, err)
	require.True(t, ir.Equal(doc, got))
}

func TestLoadTny(t *testing.T) {
	d, err := Dump(person(t), format.TnyFormat)
	require.NoError(t, err)
	doc, err := Load(d[:len(d)-2], format.TnyFormat)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())

	_, err = Load([]byte{0x07}, format.TnyFormat)
	require.ErrorIs(t, err, codec.ErrNotDocument)

	_, err = Load(d, format.Format(99))
	require.True(t, errors.Is(err, format.ErrBadFormat))
	_, err = Dump(doc, format.Format(99))
	require.ErrorIs(t, err, format.ErrBadFormat)
}

func TestDumpDetached(t *testing.T) {
	doc := person(t)
	ir.Free(doc)
	for _, f := range format.AllFormats() {
		_, err := Dump(doc, f)
		require.ErrorIs(t, err, ir.ErrDetached, f.String())
	}
}
