package main

import (
	"fmt"
	"os"

	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 1:
		args = append(args, "-")
	case 2:
	default:
		return fmt.Errorf("%w: patch requires a patch file and at most one file to which to apply it", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	in := cfg.inFormat(args[1], format.TnyFormat)
	target, err := getDocFile(cc, args[1], in)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	apply := patch.JSONPatch
	if cfg.Merge {
		apply = patch.MergePatch
	}
	res, err := apply(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := putDoc(cc.Out, res, cfg.outFormat(in)); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
