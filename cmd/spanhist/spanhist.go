// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spanhist renders a histogram of log10 span lengths from a .chrom table.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kortschak/gxf2chrom/chrom"
	"github.com/kortschak/gxf2chrom/span"
)

var (
	in   = flag.String("in", "", "specify input .chrom file (required)")
	out  = flag.String("out", "", "specify output image file (default <in>.svg)")
	bins = flag.Int("bins", 50, "specify the number of histogram bins")
	size = flag.Float64("size", 6, "specify the image width and height in inches")
)

func main() {
	flag.Parse()
	if *in == "" || *bins < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Base(*in) + ".svg"
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *in, err)
	}
	t, err := chrom.ReadTable(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read chrom table: %v", err)
	}
	if len(t) == 0 {
		log.Fatalf("no spans in %q", *in)
	}

	p, err := histogram(t, *bins)
	if err != nil {
		log.Fatalf("failed to make histogram: %v", err)
	}
	err = p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, *out)
	if err != nil {
		log.Fatalf("failed to save %q: %v", *out, err)
	}
}

func histogram(t span.Table, bins int) (*plot.Plot, error) {
	lengths := t.Lengths()
	v := make(plotter.Values, len(lengths))
	for i, l := range lengths {
		v[i] = math.Log10(l)
	}
	h, err := plotter.NewHist(v, bins)
	if err != nil {
		return nil, err
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	sum := span.Summarize(t)
	p.Title.Text = fmt.Sprintf("CDS spans (n=%d, median=%.0f)", sum.N, sum.Median)
	p.X.Label.Text = "log10(length)"
	p.Y.Label.Text = "count"
	p.Add(h)
	return p, nil
}
