package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BobMarlon/Tny/conv"
	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"

	"github.com/scott-cotton/cli"
)

// getDocFile reads and decodes the document at path, "-" meaning the
// command input.
func getDocFile(cc *cli.Context, path string, f format.Format) (*ir.Element, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r = fd
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return conv.Load(d, f)
}

// putDoc writes doc to w in format f. Text formats end with a newline.
func putDoc(w io.Writer, doc *ir.Element, f format.Format) error {
	d, err := conv.Dump(doc, f)
	if err != nil {
		return err
	}
	if !f.IsBinary() && !bytes.HasSuffix(d, []byte("\n")) {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// eachDoc calls fn on the document in each file, or on the command input
// if there are none.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, def format.Format, fn func(i int, doc *ir.Element) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.inFormat(file, def))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		err = fn(i, doc)
		ir.Free(doc)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
