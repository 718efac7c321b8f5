// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrom

import (
	"io"
	"sort"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"github.com/kortschak/gxf2chrom/span"
)

// GFF holds the fixed fields used when writing spans as GFF features.
type GFF struct {
	Source  string // e.g. "gxf2chrom"
	Feature string // e.g. "CDS_span"
	Tag     string // attribute holding the identifier
}

// Write writes t to w as GFF features in chromosome and start order.
func (g GFF) Write(w io.Writer, t span.Table) error {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := t[ids[i]], t[ids[j]]
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return ids[i] < ids[j]
	})

	gw := gff.NewWriter(w, 60, true)
	f := &gff.Feature{
		Source:         g.Source,
		Feature:        g.Feature,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: gff.Attributes{{Tag: g.Tag}},
	}
	for _, id := range ids {
		s := t[id]
		f.SeqName = s.Chrom
		f.FeatStart = s.Start
		f.FeatEnd = s.End
		f.FeatStrand = Strand(s.Strand)
		f.FeatAttributes[0].Value = id
		_, err := gw.Write(f)
		if err != nil {
			return err
		}
	}
	return nil
}

// Strand returns the seq.Strand corresponding to an annotation strand
// character. Anything other than '+' or '-' is seq.None.
func Strand(c byte) seq.Strand {
	switch c {
	case '+':
		return seq.Plus
	case '-':
		return seq.Minus
	default:
		return seq.None
	}
}
