// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kortschak/gxf2chrom/gxf"
)

// CDS is the only feature type folded into spans.
const CDS = "CDS"

// DefaultChunkLines is the number of input lines handled by a single
// work unit when Aggregator.ChunkLines is zero.
const DefaultChunkLines = 1 << 14

var ErrNoKey = errors.New("span: no identifier attribute key")

// Aggregator folds annotation text into a Table.
type Aggregator struct {
	// Key is the attribute used as the
	// identifier. It must not be empty.
	Key string

	// Workers is the number of concurrent
	// work units. Values less than one are
	// treated as one. It does not affect the
	// result.
	Workers int

	// ChunkLines is the number of lines in
	// a work unit. Zero is DefaultChunkLines.
	ChunkLines int

	// ErrorLimit is the number of line errors
	// retained in the Report. A negative value
	// retains all errors.
	ErrorLimit int
}

// Aggregate returns the spans of all CDS records in text with a positive
// length, keyed by the value of a.Key. Lines that cannot be parsed do not
// contribute to the table and are described in the returned Report.
//
// Work is split into contiguous runs of lines that are folded
// concurrently and then merged in input order, so the chromosome and
// strand of each span are those of its first record in text whatever the
// value of a.Workers.
func (a Aggregator) Aggregate(text string) (Table, Report, error) {
	if a.Key == "" {
		return nil, Report{}, ErrNoKey
	}
	workers := a.Workers
	if workers < 1 {
		workers = 1
	}
	size := a.ChunkLines
	if size < 1 {
		size = DefaultChunkLines
	}

	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		// The terminal newline does not start a line.
		lines = lines[:len(lines)-1]
	}

	parts := make([]partial, (len(lines)+size-1)/size)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range parts {
		i := i // Per-iteration copy; the module builds with go1.21 loop semantics.
		off := i * size
		end := min(off+size, len(lines))
		g.Go(func() error {
			parts[i] = a.fold(lines[off:end], off)
			return nil
		})
	}
	g.Wait()

	return a.merge(parts)
}

// entry is the accumulating state for one identifier.
type entry struct {
	start, end int
	loci       []Locus
}

// include adds the locus to e if it has not already been seen.
func (e *entry) include(chrom string, strand byte, line int) {
	for _, l := range e.loci {
		if l.Chrom == chrom && l.Strand == strand {
			return
		}
	}
	e.loci = append(e.loci, Locus{Chrom: strings.Clone(chrom), Strand: strand, Line: line})
}

// partial is the result of folding one contiguous run of lines.
type partial struct {
	spans  map[string]*entry
	report Report
}

// fold accumulates lines, the first of which is at zero-based offset off
// in the input.
func (a Aggregator) fold(lines []string, off int) partial {
	p := partial{spans: make(map[string]*entry)}
	p.report.Lines = len(lines)
	for i, line := range lines {
		n := off + i + 1
		switch {
		case strings.HasPrefix(line, "#"):
			p.report.Comments++
			continue
		case line == "" || line == "\r":
			p.report.Blank++
			continue
		}

		r, err := gxf.ParseRecord(line, a.Key)
		if err != nil {
			p.report.Dropped++
			if a.ErrorLimit < 0 || len(p.report.Errors) < a.ErrorLimit {
				p.report.Errors = append(p.report.Errors, LineError{Line: n, Err: err})
			}
			continue
		}
		if r.Feature != CDS || r.Start >= r.End {
			p.report.Filtered++
			continue
		}
		p.report.Records++

		e, ok := p.spans[r.ID]
		if !ok {
			// Clone to avoid retaining the input text.
			p.spans[strings.Clone(r.ID)] = &entry{
				start: r.Start,
				end:   r.End,
				loci:  []Locus{{Chrom: strings.Clone(r.Chrom), Strand: r.Strand, Line: n}},
			}
			continue
		}
		e.start = min(e.start, r.Start)
		e.end = max(e.end, r.End)
		e.include(r.Chrom, r.Strand, n)
	}
	return p
}

// merge combines parts, which must be in input order.
func (a Aggregator) merge(parts []partial) (Table, Report, error) {
	var (
		rep  Report
		size int
	)
	for _, p := range parts {
		size = max(size, len(p.spans))
	}
	all := make(map[string]*entry, size)

	for _, p := range parts {
		rep.Lines += p.report.Lines
		rep.Comments += p.report.Comments
		rep.Blank += p.report.Blank
		rep.Dropped += p.report.Dropped
		rep.Filtered += p.report.Filtered
		rep.Records += p.report.Records
		rep.Errors = append(rep.Errors, p.report.Errors...)

		for id, e := range p.spans {
			f, ok := all[id]
			if !ok {
				all[id] = e
				continue
			}
			f.start = min(f.start, e.start)
			f.end = max(f.end, e.end)
			// Loci in later parts are all later in the input,
			// so appending keeps f.loci in input order.
			for _, l := range e.loci {
				f.include(l.Chrom, l.Strand, l.Line)
			}
		}
	}
	if a.ErrorLimit >= 0 && len(rep.Errors) > a.ErrorLimit {
		rep.Errors = rep.Errors[:a.ErrorLimit]
	}

	t := make(Table, len(all))
	for id, e := range all {
		t[id] = Span{
			Chrom:  e.loci[0].Chrom,
			Strand: e.loci[0].Strand,
			Start:  e.start,
			End:    e.end,
		}
		if len(e.loci) > 1 {
			rep.Conflicts = append(rep.Conflicts, Conflict{ID: id, Loci: e.loci})
		}
	}
	sort.Slice(rep.Conflicts, func(i, j int) bool {
		return rep.Conflicts[i].Loci[0].Line < rep.Conflicts[j].Loci[0].Line
	})

	return t, rep, nil
}
