package libdiff

import (
	"testing"

	"github.com/BobMarlon/Tny/conv"
	"github.com/BobMarlon/Tny/ir"

	"github.com/google/go-cmp/cmp"
)

func load(t *testing.T, y string) *ir.Element {
	t.Helper()
	doc, err := conv.FromYAML([]byte(y))
	if err != nil {
		t.Fatalf("%q: %v", y, err)
	}
	return doc
}

func TestDiff(t *testing.T) {
	type testCase struct {
		name     string
		from, to string
		want     []string
	}
	for _, tc := range []testCase{
		{
			name: "equal",
			from: "{Name: John, Nr: 10, list: [1, {a: b}]}",
			to:   "{Name: John, Nr: 10, list: [1, {a: b}]}",
			want: []string{},
		},
		{
			name: "dict",
			from: "{Name: John, Nr: 10}",
			to:   "{Name: Jane, Nr: 10, Street: Main}",
			want: []string{"~ $.Name: John -> Jane", "+ $.Street: Main"},
		},
		{
			name: "dict delete",
			from: "{a: 1, b: 2}",
			to:   "{b: 2}",
			want: []string{"- $.a: 1"},
		},
		{
			name: "array",
			from: "[1, 2, 3, 4]",
			to:   "[1, 3, 4, 5]",
			want: []string{"- $[1]: 2", "+ $[3]: 5"},
		},
		{
			name: "array replace",
			from: "[1, 2, 3]",
			to:   "[1, 9, 3]",
			want: []string{"~ $[1]: 2 -> 9"},
		},
		{
			name: "nested",
			from: "{list: [1, {a: 1}]}",
			to:   "{list: [1, {a: 2}]}",
			want: []string{"~ $.list[1].a: 1 -> 2"},
		},
		{
			name: "type change",
			from: "{a: [1]}",
			to:   "{a: {b: null}}",
			want: []string{"~ $.a: [1] -> {b: NULL}"},
		},
		{
			name: "root type change",
			from: "[1]",
			to:   "{a: 1}",
			want: []string{"~ $: [1] -> {a: 1}"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := []string{}
			for _, c := range Diff(load(t, tc.from), load(t, tc.to)) {
				got = append(got, c.String())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffIndexes(t *testing.T) {
	changes := Diff(load(t, "{a: 1, b: 2}"), load(t, "{z: 0, b: 3, c: 4}"))
	type pos struct {
		Op    Op
		Path  string
		Index int
	}
	got := []pos{}
	for _, c := range changes {
		got = append(got, pos{c.Op, c.Path, c.Index})
	}
	want := []pos{
		{Delete, "$.a", 0},
		{Insert, "$.z", 0},
		{Replace, "$.b", 1},
		{Insert, "$.c", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffDetached(t *testing.T) {
	doc := load(t, "[1]")
	other := load(t, "[2]")
	ir.Free(other)
	if got := Diff(doc, other); got != nil {
		t.Errorf("diff against a freed document: %v", got)
	}
}

func TestOpText(t *testing.T) {
	for _, op := range []Op{Insert, Delete, Replace} {
		d, err := op.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(d) != op.String() {
			t.Errorf("%s marshals to %q", op, d)
		}
	}
}

func TestRuneFor(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range []int{0, 0xD7FF, 0xD800, 0xDFFF, 0x10000} {
		s := string(runeFor(n))
		if s == "�" {
			t.Errorf("rune for %d is not valid", n)
		}
		seen[s] = true
	}
	if len(seen) != 5 {
		t.Errorf("runes collide: %d distinct", len(seen))
	}
}
