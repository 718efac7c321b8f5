// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package span aggregates CDS annotation records into per-identifier
// coordinate spans.
package span

import "fmt"

// Span is the extent of all CDS records sharing an identifier. Start and
// End are zero-based and half-open.
type Span struct {
	Chrom  string
	Strand byte
	Start  int
	End    int
}

// Len returns the length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Table maps identifiers to their coordinate spans.
type Table map[string]Span

// Locus is a chromosome and strand pair first seen for an identifier at
// the given one-based input line.
type Locus struct {
	Chrom  string
	Strand byte
	Line   int
}

// Conflict records an identifier whose CDS records do not agree on
// chromosome and strand. Loci is in input order; the span reported for
// the identifier takes its chromosome and strand from Loci[0].
type Conflict struct {
	ID   string
	Loci []Locus
}

// LineError is a failure to parse a single input line.
type LineError struct {
	Line int // one-based
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e LineError) Unwrap() error { return e.Err }

// Report holds diagnostics from an aggregation. Lines counts every input
// line. Each line is then counted in exactly one of Comments, Blank,
// Dropped, Filtered or Records.
type Report struct {
	Lines    int
	Comments int
	Blank    int
	Dropped  int // lines that could not be parsed
	Filtered int // parsed lines that were not non-empty CDS records
	Records  int // lines folded into the table

	// Errors holds the first parse failures,
	// in input order, up to the aggregator's
	// error limit.
	Errors []LineError

	Conflicts []Conflict
}
