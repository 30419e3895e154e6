package printer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BobMarlon/Tny/ir"
)

type printState struct {
	indent string
	depth  int
	types  bool
	color  func(ir.Type, ColorAttr, string) string
}

func (ps *printState) apply(t ir.Type, a ColorAttr, s string) string {
	if ps.color == nil {
		return s
	}
	return ps.color(t, a, s)
}

// Print writes the document containing doc to w.
func Print(doc *ir.Element, w io.Writer, opts ...PrintOption) error {
	if doc == nil || doc.Detached() {
		return ir.ErrDetached
	}
	ps := &printState{indent: "\t"}
	for _, opt := range opts {
		opt(ps)
	}
	bw := bufio.NewWriter(w)
	if err := ps.doc(bw, doc.Root(), ps.depth); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the printed form of the document containing doc, or an
// empty string if doc is detached.
func String(doc *ir.Element, opts ...PrintOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Print(doc, buf, opts...); err != nil {
		return ""
	}
	return buf.String()
}

func (ps *printState) doc(w *bufio.Writer, root *ir.Element, level int) error {
	prefix := strings.Repeat(ps.indent, level)
	sep := ps.apply(root.Type(), SepColor, ":")
	for i, e := range root.All() {
		w.WriteString(prefix)
		if root.Type() == ir.ArrayType {
			w.WriteString(ps.apply(root.Type(), IndexColor, "["+strconv.Itoa(i)+"]"))
		} else {
			w.WriteString(ps.apply(e.Type(), FieldColor, e.Key()))
		}
		w.WriteString(sep)
		w.WriteByte(' ')
		if ps.types {
			w.WriteString(ps.apply(e.Type(), TypeColor, "("+e.Type().String()+")"))
			w.WriteByte(' ')
		}
		if err := ps.value(w, e, level); err != nil {
			return err
		}
	}
	return nil
}

func (ps *printState) value(w *bufio.Writer, e *ir.Element, level int) error {
	var s string
	switch v := e.Value().(type) {
	case ir.Null:
		s = "NULL"
	case ir.Object:
		w.WriteByte('\n')
		if v.Doc == nil {
			return fmt.Errorf("%w: %s has no document", ir.ErrInvalidStructure, e.Path())
		}
		return ps.doc(w, v.Doc, level+1)
	case ir.Binary:
		s = binary(v)
	case ir.Char:
		s = char(v)
	case ir.Int32:
		s = strconv.FormatUint(uint64(v), 10)
	case ir.Int64:
		s = strconv.FormatUint(uint64(v), 10)
	case ir.Double:
		s = strconv.FormatFloat(float64(v), 'g', -1, 64)
	default:
		return fmt.Errorf("%w: %s has no value", ir.ErrInvalidStructure, e.Path())
	}
	w.WriteString(ps.apply(e.Type(), ValueColor, s))
	_, err := w.WriteString("\n")
	return err
}

// binary prints readable text as is and quotes anything else.
func binary(b ir.Binary) string {
	if !utf8.Valid(b) {
		return strconv.Quote(string(b))
	}
	for _, r := range string(b) {
		if r != ' ' && !unicode.IsGraphic(r) {
			return strconv.Quote(string(b))
		}
	}
	return string(b)
}

func char(c ir.Char) string {
	if c < utf8.RuneSelf && unicode.IsGraphic(rune(c)) {
		return string(rune(c))
	}
	return fmt.Sprintf("0x%02x", byte(c))
}
