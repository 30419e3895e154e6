package query

import (
	"fmt"
	"maps"

	"github.com/BobMarlon/Tny/conv"
	"github.com/BobMarlon/Tny/debug"
	"github.com/BobMarlon/Tny/ir"

	"github.com/expr-lang/expr"
)

// Env holds variables visible to expressions.
type Env map[string]any

// baseEnv returns the environment for root. The vm requires exactly
// map[string]any; a named map type fails at run time.
func baseEnv(root *ir.Element, env Env) map[string]any {
	res := map[string]any{"doc": conv.ToPlain(root)}
	maps.Copy(res, env)
	return res
}

// Eval evaluates src against the document containing doc.
func Eval(doc *ir.Element, src string, env Env) (any, error) {
	if doc == nil || doc.Detached() {
		return nil, ir.ErrDetached
	}
	root := doc.Root()
	e := baseEnv(root, env)
	prg, err := expr.Compile(src, append(exprOpts(root), expr.Env(e))...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, e)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q on %s: %v\n", src, root.Path(), res)
	}
	return res, nil
}

// Filter returns the children of the document containing doc for which
// the boolean expression pred holds.
func Filter(doc *ir.Element, pred string, env Env) ([]*ir.Element, error) {
	if doc == nil || doc.Detached() {
		return nil, ir.ErrDetached
	}
	root := doc.Root()
	e := baseEnv(root, env)
	e["key"], e["index"] = "", 0
	// it stays unchecked: its type varies between children.
	delete(e, "it")
	opts := append(exprOpts(root), expr.Env(e), expr.AllowUndefinedVariables(), expr.AsBool())
	prg, err := expr.Compile(pred, opts...)
	if err != nil {
		return nil, err
	}
	var res []*ir.Element
	for i, c := range root.All() {
		e["it"], e["key"], e["index"] = conv.ToPlain(c), c.Key(), i
		out, err := expr.Run(prg, e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Path(), err)
		}
		if out.(bool) {
			res = append(res, c)
		}
	}
	if debug.Query() {
		debug.Logf("filter %q on %s: %d of %d\n", pred, root.Path(), len(res), root.Len())
	}
	return res, nil
}
