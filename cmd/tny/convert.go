package main

import (
	"fmt"

	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	return convert(cfg.MainConfig, cc, args, format.YAMLFormat, format.TnyFormat)
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return convert(cfg.MainConfig, cc, args, format.TnyFormat, format.YAMLFormat)
}

func convert(cfg *MainConfig, cc *cli.Context, files []string, in, out format.Format) error {
	of := cfg.outFormat(out)
	if of.IsBinary() && len(files) > 1 {
		return fmt.Errorf("%w: %s output takes a single document, got %d files", cli.ErrUsage, of, len(files))
	}
	w := cc.Out
	return eachDoc(cfg, cc, files, in, func(i int, doc *ir.Element) error {
		if i > 0 && of.IsYAML() {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		return putDoc(w, doc, of)
	})
}
