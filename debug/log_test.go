package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/BobMarlon/Tny/ir"

	"github.com/google/go-cmp/cmp"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out = buf
	defer func() { out = os.Stderr }()

	doc, err := ir.New(ir.DictType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ir.Add(doc, ir.Int32Type, "Nr", ir.Int32(10)); err != nil {
		t.Fatal(err)
	}
	Logf("doc:\n%v%v %d\n", doc, []any{"a"}, 3)
	want := "doc:\n\tNr: 10\n[\n   |  \"a\"\n   |] 3\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLogfDetached(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out = buf
	defer func() { out = os.Stderr }()

	Logf("%v", (*ir.Element)(nil))
	if got := buf.String(); got != "<detached>" {
		t.Errorf("got %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("TNY_TEST_BOOL", "true")
	if !boolEnv("TNY_TEST_BOOL") {
		t.Error("true not parsed")
	}
	t.Setenv("TNY_TEST_BOOL", "nope")
	if boolEnv("TNY_TEST_BOOL") {
		t.Error("garbage parsed as true")
	}
	if boolEnv("TNY_TEST_UNSET") {
		t.Error("unset parsed as true")
	}
}
