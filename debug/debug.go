package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Loads bool
	Diff  bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Loads = boolEnv("TNY_DEBUG_LOADS")
	d.Diff = boolEnv("TNY_DEBUG_DIFF")
	d.Patch = boolEnv("TNY_DEBUG_PATCH")
	d.Query = boolEnv("TNY_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Loads() bool {
	return d.Loads
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
