package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/printer"
	"github.com/BobMarlon/Tny/query"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='print with color'"`
	Types  bool   `cli:"name=types desc='print the type of each value'"`
	Indent string `cli:"name=indent desc='indentation per nesting level (default tab)'"`

	T bool `cli:"name=t aliases=tny desc='do i/o in tny'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	C bool `cli:"name=c aliases=cbor desc='do i/o in cbor'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -t, -j, -y or -c.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.T:
		return format.TnyFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.C:
		return format.CBORFormat, true
	}
	return 0, false
}

// inFormat picks the format to read path in: -I, then the format flags,
// then the file extension, then def.
func (cfg *MainConfig) inFormat(path string, def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if path != "-" {
		if f, err := format.FromPath(path); err == nil {
			return f
		}
	}
	return def
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return def
}

// useColor reports whether output to w should be colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) printOpts(w io.Writer) []printer.PrintOption {
	res := []printer.PrintOption{printer.WithTypes(cfg.Types)}
	if cfg.Indent != "" {
		res = append(res, printer.WithIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, printer.WithColors(printer.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=patch desc='output a json patch'"`
	Merge   bool `cli:"name=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='patch is a json merge patch'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env   query.Env
	Where bool `cli:"name=w aliases=where desc='treat the expression as a filter on top level elements'"`

	Query *cli.Command
}

type BenchConfig struct {
	*MainConfig
	N     int  `cli:"name=n desc='number of records'"`
	Sizes bool `cli:"name=sizes desc='also report json, yaml and cbor sizes'"`
	Gops  bool `cli:"name=gops desc='start a gops agent while running'"`

	Bench *cli.Command
}
