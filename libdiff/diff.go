package libdiff

import (
	"github.com/BobMarlon/Tny/debug"
	"github.com/BobMarlon/Tny/ir"
)

// Diff returns the changes turning the document containing from into the
// document containing to. Equal documents give no changes.
func Diff(from, to *ir.Element) []Change {
	if from == nil || to == nil || from.Detached() || to.Detached() {
		return nil
	}
	d := &differ{}
	d.docs("$", "$", from.Root(), to.Root())
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %d changes\n", from.Path(), to.Path(), len(d.changes))
	}
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(op Op, path string, index int, from, to ir.Value) {
	d.changes = append(d.changes, Change{Op: op, Path: path, Index: index, From: from, To: to})
}

// docs compares two documents; fp and tp are their paths in the from and to
// frames.
func (d *differ) docs(fp, tp string, from, to *ir.Element) {
	if from.Type() != to.Type() {
		d.add(Replace, fp, -1, ir.Object{Doc: from}, ir.Object{Doc: to})
		return
	}
	if from.Type() == ir.DictType {
		d.dict(fp, tp, from, to)
		return
	}
	d.array(fp, tp, from, to)
}

// elements compares two matched elements; i is the position of from.
func (d *differ) elements(fp, tp string, i int, from, to *ir.Element) {
	if from.Type() != to.Type() {
		d.add(Replace, fp, i, from.Value(), to.Value())
		return
	}
	if from.Type() == ir.ObjectType {
		fd, td := from.Doc(), to.Doc()
		if fd == nil || td == nil {
			if fd != td {
				d.add(Replace, fp, i, from.Value(), to.Value())
			}
			return
		}
		d.docs(fp, tp, fd, td)
		return
	}
	if !ir.Equal(from, to) {
		d.add(Replace, fp, i, from.Value(), to.Value())
	}
}
