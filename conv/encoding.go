package conv

import (
	"fmt"

	"github.com/BobMarlon/Tny/codec"
	"github.com/BobMarlon/Tny/debug"
	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{MaxNestedLevels: 256}.DecMode()
	if err != nil {
		panic(err)
	}
}

// FromYAML decodes a YAML (or JSON) document keeping map order.
func FromYAML(data []byte) (*ir.Element, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// FromJSON decodes a JSON document keeping map order.
func FromJSON(data []byte) (*ir.Element, error) {
	return FromYAML(data)
}

func FromCBOR(data []byte) (*ir.Element, error) {
	var v any
	if err := cborDec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

func ToYAML(doc *ir.Element) ([]byte, error) {
	if err := attached(doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(ToAny(doc.Root()))
}

func ToJSON(doc *ir.Element) ([]byte, error) {
	if err := attached(doc); err != nil {
		return nil, err
	}
	return yaml.MarshalWithOptions(ToAny(doc.Root()), yaml.JSON())
}

func ToCBOR(doc *ir.Element) ([]byte, error) {
	if err := attached(doc); err != nil {
		return nil, err
	}
	return cborEnc.Marshal(toGo(doc.Root(), binary))
}

func attached(doc *ir.Element) error {
	if doc == nil || doc.Detached() {
		return ir.ErrDetached
	}
	return nil
}

// Load decodes data in format f. Binary tny input that is truncated or
// corrupt yields the partially decoded document; an error is returned only
// when nothing could be decoded.
func Load(data []byte, f format.Format) (*ir.Element, error) {
	var (
		doc *ir.Element
		err error
	)
	switch f {
	case format.TnyFormat:
		var rep codec.Report
		doc = codec.Loads(data, codec.WithReport(&rep))
		if doc == nil {
			return nil, fmt.Errorf("%w: %d bytes", codec.ErrNotDocument, len(data))
		}
		if debug.Loads() && !rep.Complete {
			debug.Logf("tny input truncated: used %d of %d bytes, %d elements\n", rep.Consumed, len(data), doc.Len())
		}
	case format.JSONFormat:
		doc, err = FromJSON(data)
	case format.YAMLFormat:
		doc, err = FromYAML(data)
	case format.CBORFormat:
		doc, err = FromCBOR(data)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", f, err)
	}
	if debug.Loads() {
		debug.Logf("loaded %s document (%d bytes as tny):\n%v\n", f, doc.Size(), doc)
	}
	return doc, nil
}

// Dump encodes the document containing doc in format f.
func Dump(doc *ir.Element, f format.Format) ([]byte, error) {
	switch f {
	case format.TnyFormat:
		return codec.Dumps(doc)
	case format.JSONFormat:
		return ToJSON(doc)
	case format.YAMLFormat:
		return ToYAML(doc)
	case format.CBORFormat:
		return ToCBOR(doc)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}
