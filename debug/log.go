package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/printer"
)

var out io.Writer = os.Stderr

// Logf writes to stderr, rendering documents and generic maps or lists in
// args as indented text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Element:
			if x == nil || x.Detached() {
				args[i] = "<detached>"
				continue
			}
			args[i] = printer.String(x, printer.Depth(1))
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
