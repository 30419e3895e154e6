package main

import (
	"github.com/BobMarlon/Tny/bench"
	"github.com/BobMarlon/Tny/query"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: tny/t, json/j, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: tny/t, json/j, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tny").
		WithSynopsis("tny [opts] command [opts]").
		WithDescription("tny is a tool for working with tny binary documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tnyMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			LoadCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg),
			BenchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print documents as an indented tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithAliases("l").
		WithSynopsis("load [files]").
		WithDescription("convert json, yaml or cbor documents to tny").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("convert tny documents to yaml, json or cbor").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-patch|-merge] a b").
		WithDescription("diff documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] <patchfile> [file]").
		WithDescription("apply a json patch or json merge patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg, Env: query.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query [-w] [-e name=val [-e name2=val2]...] <expr> [file]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryCmd(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

const queryDescription = `evaluate an expression against a document.

The document is available as 'doc', along with the functions getpath(path),
listpath(path), typeof(path), size() and getenv(name). Paths look like
$.field[0].other.

With -w the expression is a predicate evaluated for each top level element,
bound to 'it', 'key' and 'index'; the elements for which it holds are output
as a document.`

func envOptTypeFunc(env query.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func BenchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BenchConfig{MainConfig: mainCfg, N: bench.DefaultCount}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Bench, "bench").
		WithAliases("b").
		WithSynopsis("bench [-n count] [-sizes] [-gops]").
		WithDescription("time building, encoding and decoding an array of records").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return benchCmd(cfg, cc, args)
		})
}
