package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns a path such as $.Name or $[2].Nr locating e from the
// outermost document.
func (e *Element) Path() string {
	if e.root == nil {
		return ""
	}
	prefix := "$"
	if h := e.root.holder; h != nil {
		prefix = h.Path()
	}
	if e.root == e {
		return prefix
	}
	if e.root.typ == DictType {
		return PathField(prefix, e.key)
	}
	return PathIndex(prefix, e.Index())
}

// PathField extends path p by the key f.
func PathField(p, f string) string {
	return p + "." + pathString(f)
}

// PathIndex extends path p by position i.
func PathIndex(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Path is a parsed element path. Each step selects a key or a position;
// IndexAll selects every child.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	parent.Next = &Path{}
	return parseFrag(rest, parent.Next)
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// container returns the document a path step applies to: e itself for a
// root, the embedded document for an Object element, nil otherwise.
func container(e *Element) *Element {
	if e.IsRoot() {
		return e
	}
	if e.typ == ObjectType {
		return e.Doc()
	}
	return nil
}

// GetPath returns the element at path p below the document containing e,
// or nil if nothing is there.
func (e *Element) GetPath(p string) (*Element, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	if e.root == nil {
		return nil, ErrDetached
	}
	res := e.root
	for ; yp != nil; yp = yp.Next {
		if yp.IndexAll {
			return nil, fmt.Errorf("any index in get")
		}
		if yp.Field == nil && yp.Index == nil {
			continue
		}
		doc := container(res)
		if doc == nil {
			return nil, fmt.Errorf("%s: expected a document, got %s", res.Path(), res.typ)
		}
		if yp.Index != nil {
			res = doc.At(*yp.Index)
		} else {
			if doc.typ != DictType {
				return nil, fmt.Errorf("%s: field %q in %s", doc.Path(), *yp.Field, doc.typ)
			}
			res = doc.Get(*yp.Field)
		}
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

// ListPath appends to dst every element matched by path p, where [*]
// selects all children of a document.
func (e *Element) ListPath(dst []*Element, p string) ([]*Element, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	if e.root == nil {
		return nil, ErrDetached
	}
	if yp.Field == nil && yp.Index == nil && !yp.IndexAll {
		yp = yp.Next
	}
	return listPath(dst, e.root, yp), nil
}

func listPath(dst []*Element, e *Element, yp *Path) []*Element {
	if yp == nil {
		return append(dst, e)
	}
	doc := container(e)
	if doc == nil {
		return dst
	}
	switch {
	case yp.IndexAll:
		for _, c := range doc.All() {
			dst = listPath(dst, c, yp.Next)
		}
	case yp.Index != nil:
		if c := doc.At(*yp.Index); c != nil {
			dst = listPath(dst, c, yp.Next)
		}
	case yp.Field != nil:
		if c := doc.Get(*yp.Field); c != nil && doc.typ == DictType {
			dst = listPath(dst, c, yp.Next)
		}
	}
	return dst
}
