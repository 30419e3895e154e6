package patch

import (
	"fmt"

	"github.com/BobMarlon/Tny/debug"
	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/libdiff"
)

// Apply returns a copy of the document containing doc with changes applied.
// doc itself is not modified.
//
// Replaces are applied first, then deletes in reverse order, then inserts
// in order, matching the frames of libdiff paths.
func Apply(doc *ir.Element, changes []libdiff.Change) (*ir.Element, error) {
	res := ir.Copy(doc)
	if res == nil {
		return nil, ir.ErrDetached
	}
	var deletes, inserts []libdiff.Change
	for _, c := range changes {
		switch c.Op {
		case libdiff.Replace:
			r, err := replace(res, c)
			if err != nil {
				ir.Free(res)
				return nil, err
			}
			res = r
		case libdiff.Delete:
			deletes = append(deletes, c)
		case libdiff.Insert:
			inserts = append(inserts, c)
		default:
			ir.Free(res)
			return nil, fmt.Errorf("%w: unknown op %s at %s", ErrConflict, c.Op, c.Path)
		}
	}
	for i := len(deletes) - 1; i >= 0; i-- {
		if err := remove(res, deletes[i]); err != nil {
			ir.Free(res)
			return nil, err
		}
	}
	for _, c := range inserts {
		if err := insert(res, c); err != nil {
			ir.Free(res)
			return nil, err
		}
	}
	if debug.Patch() {
		debug.Logf("applied %d changes:\n%v", len(changes), res)
	}
	return res, nil
}

// resolve walks p below root and returns the document holding the last
// step and that step. A path to the root gives a nil step.
func resolve(root *ir.Element, path string) (*ir.Element, *ir.Path, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPath, err)
	}
	if p.Field == nil && p.Index == nil && !p.IndexAll {
		p = p.Next
	}
	doc := root
	for x := p; x != nil; x = x.Next {
		if x.IndexAll {
			return nil, nil, fmt.Errorf("%w: %s selects more than one element", ErrPath, path)
		}
		if x.Next == nil {
			if (x.Field != nil) != (doc.Type() == ir.DictType) {
				return nil, nil, fmt.Errorf("%w: %s does not match %s %s", ErrPath, path, doc.Type(), doc.Path())
			}
			return doc, x, nil
		}
		e := step(doc, x)
		if e == nil || e.Doc() == nil {
			return nil, nil, fmt.Errorf("%w: %s not found", ErrPath, path)
		}
		doc = e.Doc()
	}
	return doc, nil, nil
}

func step(doc *ir.Element, x *ir.Path) *ir.Element {
	switch {
	case x.Field != nil:
		return doc.Get(*x.Field)
	case x.Index != nil:
		return doc.At(*x.Index)
	}
	return nil
}

func replace(res *ir.Element, c libdiff.Change) (*ir.Element, error) {
	if c.To == nil {
		return nil, fmt.Errorf("%w: replace without value at %s", ErrConflict, c.Path)
	}
	doc, last, err := resolve(res, c.Path)
	if err != nil {
		return nil, err
	}
	if last == nil {
		o, ok := c.To.(ir.Object)
		if !ok || o.Doc == nil {
			return nil, fmt.Errorf("%w: document replaced by %s", ErrConflict, c.To.Type())
		}
		ir.Free(res)
		return ir.Copy(o.Doc), nil
	}
	e := step(doc, last)
	if e == nil {
		return nil, fmt.Errorf("%w: %s not found", ErrPath, c.Path)
	}
	if doc.Type() == ir.DictType {
		_, err = ir.Add(doc, c.To.Type(), e.Key(), c.To)
		return res, err
	}
	if _, err := ir.Add(e, c.To.Type(), "", c.To); err != nil {
		return nil, err
	}
	ir.Remove(e)
	return res, nil
}

func remove(res *ir.Element, c libdiff.Change) error {
	doc, last, err := resolve(res, c.Path)
	if err != nil {
		return err
	}
	if last == nil {
		return fmt.Errorf("%w: cannot delete the document", ErrConflict)
	}
	e := step(doc, last)
	if e == nil {
		return fmt.Errorf("%w: %s not found", ErrPath, c.Path)
	}
	ir.Remove(e)
	return nil
}

func insert(res *ir.Element, c libdiff.Change) error {
	if c.To == nil {
		return fmt.Errorf("%w: insert without value at %s", ErrConflict, c.Path)
	}
	doc, last, err := resolve(res, c.Path)
	if err != nil {
		return err
	}
	if last == nil {
		return fmt.Errorf("%w: cannot insert the document", ErrConflict)
	}
	i, key := c.Index, ""
	if last.Field != nil {
		key = *last.Field
		if doc.Get(key) != nil {
			return fmt.Errorf("%w: %s already exists", ErrConflict, c.Path)
		}
	} else {
		i = *last.Index
	}
	if i < 0 || i > doc.Len() {
		return fmt.Errorf("%w: position %d of %s with %d elements", ErrPath, i, doc.Path(), doc.Len())
	}
	prev := doc
	if i > 0 {
		prev = doc.At(i - 1)
	}
	_, err = ir.Add(prev, c.To.Type(), key, c.To)
	return err
}
