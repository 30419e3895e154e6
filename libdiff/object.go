package libdiff

import (
	"github.com/BobMarlon/Tny/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// dict diffs the key sequences of two Dicts and recurses on the values of
// keys present in both.
func (d *differ) dict(fp, tp string, from, to *ir.Element) {
	fieldMap := map[string]rune{}
	fromRunes, fromElts := mapFieldsTo(fieldMap, from)
	toRunes, toElts := mapFieldsTo(fieldMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				e := fromElts[fi]
				d.add(Delete, ir.PathField(fp, e.Key()), fi, e.Value(), nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				f, t := fromElts[fi], toElts[ti]
				d.elements(ir.PathField(fp, f.Key()), ir.PathField(tp, t.Key()), fi, f, t)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				e := toElts[ti]
				d.add(Insert, ir.PathField(tp, e.Key()), ti, nil, e.Value())
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, doc *ir.Element) ([]rune, []*ir.Element) {
	rs := make([]rune, 0, doc.Len())
	elts := make([]*ir.Element, 0, doc.Len())
	for _, e := range doc.All() {
		r, ok := m[e.Key()]
		if !ok {
			r = runeFor(len(m))
			m[e.Key()] = r
		}
		rs = append(rs, r)
		elts = append(elts, e)
	}
	return rs, elts
}

// runeFor maps n to a valid rune, skipping the surrogate range which does
// not survive conversion to string.
func runeFor(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
