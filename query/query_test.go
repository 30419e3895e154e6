package query

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
		t.Fatal(err)
	}
	return doc
}

func TestEval(t *testing.T) {
	doc := load(t, "{Name: John Doe, Nr: 10, list: [a, {k: v}, 3]}")
	type testCase struct {
		src  string
		env  Env
		want any
	}
	for _, tc := range []testCase{
		{src: `doc.Name + "!"`, want: "John Doe!"},
		{src: `getpath("$.list[1].k")`, want: "v"},
		{src: `getpath("$.missing")`, want: nil},
		{src: `getpath("$.list[1]")`, want: map[string]any{"k": "v"}},
		{src: `len(listpath("$.list[*]"))`, want: 3},
		{src: `typeof("$.Nr")`, want: "Int32"},
		{src: `typeof("$.list")`, want: "Object"},
		{src: `size()`, want: doc.Size()},
		{src: `getpath("$.Nr") == 10`, want: true},
		{src: `x * 2`, env: Env{"x": 3}, want: 6},
		{src: `doc.Name == who`, env: Env{"who": "John Doe"}, want: true},
	} {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(doc, tc.src, tc.env)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	doc := load(t, "[1, 2]")
	if _, err := Eval(doc, `1 +`, nil); err == nil {
		t.Error("expected compile error")
	}
	if _, err := Eval(doc, `getpath("no dollar")`, nil); err == nil {
		t.Error("expected path error")
	}
	ir.Free(doc)
	if _, err := Eval(doc, `1`, nil); err == nil {
		t.Error("expected error on freed document")
	}
}

func TestFilter(t *testing.T) {
	doc := load(t, `
- {Name: a, Nr: 1}
- {Name: b, Nr: 5}
- {Name: c, Nr: 9}
`)
	type testCase struct {
		pred string
		env  Env
		want []string
	}
	for _, tc := range []testCase{
		{pred: `it.Nr > 3`, want: []string{"$[1]", "$[2]"}},
		{pred: `index == 0`, want: []string{"$[0]"}},
		{pred: `it.Name in names`, env: Env{"names": []any{"a", "c"}}, want: []string{"$[0]", "$[2]"}},
		{pred: `false`, want: []string{}},
	} {
		t.Run(tc.pred, func(t *testing.T) {
			elts, err := Filter(doc, tc.pred, tc.env)
			if err != nil {
				t.Fatal(err)
			}
			got := []string{}
			for _, e := range elts {
				got = append(got, e.Path())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Filter(doc, `"not bool"`, nil); err == nil {
		t.Error("expected error for non boolean predicate")
	}
}

func TestEvalMember(t *testing.T) {
	doc := load(t, "{Nr: 10, p: {Name: x}}")
	got, err := Eval(doc, `doc.Nr`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(any(uint32(10)), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got, err = Eval(doc, `doc.p.Name`, Env{"unused": nil})
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("got %v", got)
	}
}

func TestFilterMixed(t *testing.T) {
	doc := load(t, "[1, 5, 9, x]")
	elts, err := Filter(doc, `index < 3 && it > 3`, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for _, e := range elts {
		got = append(got, e.Path())
	}
	if diff := cmp.Diff([]string{"$[1]", "$[2]"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	elts, err = Filter(doc, `it == "x"`, Env{"it": "shadowed"})
	if err != nil {
		t.Fatal(err)
	}
	if len(elts) != 1 || elts[0].Path() != "$[3]" {
		t.Errorf("got %d elements", len(elts))
	}
}

func TestFilterKeys(t *testing.T) {
	doc := load(t, "{a: 1, bb: 2, ccc: 3}")
	elts, err := Filter(doc, `len(key) > 1`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(elts) != 2 || elts[0].Key() != "bb" {
		t.Errorf("got %d elements", len(elts))
	}
}
