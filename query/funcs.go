package query

import (
	"os"

	"github.com/BobMarlon/Tny/conv"
	"github.com/BobMarlon/Tny/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Element) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			e, err := doc.GetPath(params[0].(string))
			if err != nil || e == nil {
				return nil, err
			}
			return conv.ToPlain(e), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			elts, err := doc.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(elts))
			for i, e := range elts {
				res[i] = conv.ToPlain(e)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("typeof", func(params ...any) (any, error) {
			e, err := doc.GetPath(params[0].(string))
			if err != nil || e == nil {
				return "", err
			}
			return e.Type().String(), nil
		},
			new(func(string) string)),
		expr.Function("size", func(params ...any) (any, error) {
			return doc.Size(), nil
		},
			new(func() int)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
