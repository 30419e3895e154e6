package libdiff

import (
	"github.com/BobMarlon/Tny/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// array diffs the sequences of element summaries of two Arrays:
//
//  1. scalars are summarized by their hash, embedded documents by their
//     container type only
//  2. the summary sequences are diffed
//  3. matched embedded documents are diffed recursively, matched scalars
//     that differ despite equal hashes are replaced
//  4. deletes directly followed by inserts are paired into replaces
func (d *differ) array(fp, tp string, from, to *ir.Element) {
	m := map[uint64]rune{}
	fromRunes, fromElts := mapValues(m, from)
	toRunes, toElts := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			pairs := min(n, ins)
			for range pairs {
				f, t := fromElts[fi], toElts[ti]
				d.add(Replace, ir.PathIndex(fp, fi), fi, f.Value(), t.Value())
				fi++
				ti++
			}
			for range n - pairs {
				d.add(Delete, ir.PathIndex(fp, fi), fi, fromElts[fi].Value(), nil)
				fi++
			}
			for range ins - pairs {
				d.add(Insert, ir.PathIndex(tp, ti), ti, nil, toElts[ti].Value())
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.elements(ir.PathIndex(fp, fi), ir.PathIndex(tp, ti), fi, fromElts[fi], toElts[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(Insert, ir.PathIndex(tp, ti), ti, nil, toElts[ti].Value())
				ti++
			}
		}
	}
}

func mapValues(m map[uint64]rune, doc *ir.Element) ([]rune, []*ir.Element) {
	rs := make([]rune, 0, doc.Len())
	elts := make([]*ir.Element, 0, doc.Len())
	for _, e := range doc.All() {
		sum := summary(e)
		r, ok := m[sum]
		if !ok {
			r = runeFor(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
		elts = append(elts, e)
	}
	return rs, elts
}

func summary(e *ir.Element) uint64 {
	if e.Type() == ir.ObjectType {
		if doc := e.Doc(); doc != nil {
			return uint64(ir.ObjectType)<<8 | uint64(doc.Type())
		}
		return uint64(ir.ObjectType) << 8
	}
	return e.Hash()
}
