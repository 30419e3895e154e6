// Package bench measures how long it takes to build, encode and decode a
// document of N small records.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BobMarlon/Tny/codec"
	"github.com/BobMarlon/Tny/conv"
	"github.com/BobMarlon/Tny/format"
	"github.com/BobMarlon/Tny/ir"
)

const (
	DefaultCount = 100000

	recName   = "John Doe"
	recStreet = "Some street name"
	recNr     = 10
)

// Result holds the timings of one Run.
type Result struct {
	Count           int
	Size            int
	Creation        time.Duration
	Serialization   time.Duration
	Deserialization time.Duration
	// Sizes holds the encoded size in each extra format requested with
	// WithFormats.
	Sizes map[format.Format]int
}

func (r *Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("count", r.Count),
		slog.Int("size", r.Size),
		slog.Duration("creation", r.Creation),
		slog.Duration("serialization", r.Serialization),
		slog.Duration("deserialization", r.Deserialization),
	}
	for _, f := range format.AllFormats() {
		if n, ok := r.Sizes[f]; ok {
			attrs = append(attrs, slog.Int(f.String()+"Size", n))
		}
	}
	return slog.GroupValue(attrs...)
}

type Option func(*config)

type config struct {
	formats []format.Format
}

// WithFormats makes Run also encode the document in each of fs and record
// the sizes.
func WithFormats(fs ...format.Format) Option {
	return func(c *config) { c.formats = append(c.formats, fs...) }
}

// Build returns an Array of n Objects, each a Dict with a Name, a Street
// and an Nr.
func Build(ctx context.Context, n int) (*ir.Element, error) {
	arr, err := ir.New(ir.ArrayType)
	if err != nil {
		return nil, err
	}
	prev := arr
	for i := range n {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := record()
		if err != nil {
			return nil, err
		}
		prev, err = prev.Add(ir.ObjectType, "", ir.Object{Doc: rec})
		ir.Free(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return arr, nil
}

func record() (*ir.Element, error) {
	d, err := ir.New(ir.DictType)
	if err != nil {
		return nil, err
	}
	e, err := d.Add(ir.BinaryType, "Name", ir.Binary(recName))
	if err != nil {
		return nil, err
	}
	if e, err = e.Add(ir.BinaryType, "Street", ir.Binary(recStreet)); err != nil {
		return nil, err
	}
	if _, err = e.Add(ir.Int32Type, "Nr", ir.Int32(recNr)); err != nil {
		return nil, err
	}
	return d, nil
}

// Run builds a document of n records, encodes it and decodes the result.
func Run(ctx context.Context, n int, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	res := &Result{Count: n}

	t0 := time.Now()
	doc, err := Build(ctx, n)
	if err != nil {
		return nil, err
	}
	res.Creation = time.Since(t0)

	t0 = time.Now()
	d, err := codec.Dumps(doc)
	if err != nil {
		return nil, err
	}
	res.Serialization = time.Since(t0)
	res.Size = len(d)

	t0 = time.Now()
	var rep codec.Report
	back := codec.Loads(d, codec.WithReport(&rep))
	res.Deserialization = time.Since(t0)
	if back == nil || !rep.Complete || back.Len() != n {
		return nil, fmt.Errorf("%w: decoded %d of %d bytes", codec.ErrEncodeInconsistency, rep.Consumed, len(d))
	}
	ir.Free(back)

	for _, f := range cfg.formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := conv.Dump(doc, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		if res.Sizes == nil {
			res.Sizes = map[format.Format]int{}
		}
		res.Sizes[f] = len(out)
	}
	return res, nil
}
