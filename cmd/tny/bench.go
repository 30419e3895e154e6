package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/BobMarlon/Tny/bench"
	"github.com/BobMarlon/Tny/format"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func benchCmd(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: bench takes no arguments, got %v", cli.ErrUsage, args)
	}
	if cfg.N < 0 {
		return fmt.Errorf("%w: negative record count %d", cli.ErrUsage, cfg.N)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []bench.Option
	if cfg.Sizes {
		opts = append(opts, bench.WithFormats(format.JSONFormat, format.YAMLFormat, format.CBORFormat))
	}
	res, err := bench.Run(ctx, cfg.N, opts...)
	if err != nil {
		return err
	}
	theLog.Info("bench", "result", res)
	return nil
}
