package main

import (
	"fmt"
	"strings"

	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/query"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: query requires an expression and at most one file", cli.ErrUsage)
	}
	src := args[0]
	if src == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	in := cfg.inFormat(file, format.TnyFormat)
	doc, err := getDocFile(cc, file, in)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	defer ir.Free(doc)

	if cfg.Where {
		elts, err := query.Filter(doc, src, cfg.Env)
		if err != nil {
			return err
		}
		res, err := selected(doc.Type(), elts)
		if err != nil {
			return err
		}
		return putDoc(cc.Out, res, cfg.outFormat(format.YAMLFormat))
	}
	v, err := query.Eval(doc, src, cfg.Env)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}

// selected returns a new document of type t holding copies of elts.
func selected(t ir.Type, elts []*ir.Element) (*ir.Element, error) {
	res, err := ir.New(t)
	if err != nil {
		return nil, err
	}
	prev := res
	for _, e := range elts {
		prev, err = prev.Add(e.Type(), e.Key(), e.Value())
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func envFunc(env query.Env, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, name, err)
	}
	env[name] = v
	return nil
}
