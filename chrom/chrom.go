// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chrom reads and writes .chrom coordinate tables.
//
// A .chrom file has no header and one line per identifier with five tab
// separated fields:
//
//	identifier	chromosome	strand	start	end
//
// where start and end are zero-based and half-open.
package chrom

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kortschak/gxf2chrom/span"
)

const (
	idField = iota
	chromField
	strandField
	startField
	endField

	numFields
)

// Write writes t to w in .chrom format. Lines are written in identifier
// order.
func Write(w io.Writer, t span.Table) error {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bw := bufio.NewWriter(w)
	for _, id := range ids {
		s := t[id]
		_, err := fmt.Fprintf(bw, "%s\t%s\t%c\t%d\t%d\n", id, s.Chrom, s.Strand, s.Start, s.End)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Reader reads .chrom lines.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Read returns the next identifier and span. At the end of the input
// Read returns io.EOF.
func (r *Reader) Read() (id string, s span.Span, err error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSuffix(r.sc.Text(), "\r")
		if text == "" {
			continue
		}
		id, s, err = parse(text)
		if err != nil {
			return "", span.Span{}, fmt.Errorf("chrom: line %d: %w", r.line, err)
		}
		return id, s, nil
	}
	err = r.sc.Err()
	if err == nil {
		err = io.EOF
	}
	return "", span.Span{}, err
}

func parse(line string) (string, span.Span, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return "", span.Span{}, fmt.Errorf("unexpected number of fields: %d", len(fields))
	}
	if len(fields[strandField]) != 1 {
		return "", span.Span{}, fmt.Errorf("bad strand: %q", fields[strandField])
	}
	start, err := strconv.Atoi(fields[startField])
	if err != nil {
		return "", span.Span{}, err
	}
	end, err := strconv.Atoi(fields[endField])
	if err != nil {
		return "", span.Span{}, err
	}
	return fields[idField], span.Span{
		Chrom:  fields[chromField],
		Strand: fields[strandField][0],
		Start:  start,
		End:    end,
	}, nil
}

// ReadTable returns the table described by the .chrom data in r.
// Duplicate identifiers are an error.
func ReadTable(r io.Reader) (span.Table, error) {
	t := make(span.Table)
	cr := NewReader(r)
	for {
		id, s, err := cr.Read()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			break
		}
		if _, ok := t[id]; ok {
			return nil, fmt.Errorf("chrom: line %d: duplicate identifier %q", cr.line, id)
		}
		t[id] = s
	}
	return t, nil
}
