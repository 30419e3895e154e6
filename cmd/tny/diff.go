package main

import (
	"fmt"
	"io"

	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/libdiff"
	"github.com/BobMarlon/Tny/patch"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Patch && cfg.Merge {
		return fmt.Errorf("%w: only one of -patch, -merge may be specified", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	y1, err := getDocFile(cc, args[0], cfg.inFormat(args[0], format.TnyFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getDocFile(cc, args[1], cfg.inFormat(args[1], format.TnyFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Element) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	switch {
	case cfg.Patch:
		d, err := patch.ToJSONPatch(changes)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return true, err
	case cfg.Merge:
		d, err := patch.CreateMergePatch(a, b)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return true, err
	}
	colors := map[libdiff.Op]*color.Color{
		libdiff.Insert:  color.New(color.FgGreen),
		libdiff.Delete:  color.New(color.FgRed),
		libdiff.Replace: color.New(color.FgYellow),
	}
	useColor := cfg.useColor(w)
	for _, c := range changes {
		line := c.String()
		if useColor {
			line = colors[c.Op].Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return false, err
		}
	}
	return true, nil
}
