package main

import (
	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"
	"github.com/BobMarlon/Tny/printer"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	opts := cfg.printOpts(w)
	return eachDoc(cfg.MainConfig, cc, args, format.TnyFormat, func(i int, doc *ir.Element) error {
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		return printer.Print(doc, w, opts...)
	})
}
