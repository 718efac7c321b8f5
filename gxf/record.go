// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gxf parses GTF and GFF3 annotation lines.
package gxf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/biogo/biogo/feat"
)

const (
	seqnameField = iota
	_            // sourceField
	featureField
	startField
	endField
	_ // scoreField
	strandField
	_ // frameField
	attributeField

	numFields
)

// Record is a single parsed annotation line.
//
// Start and End are zero-based and half-open. Record does not require
// Start < End; callers must check this when it matters.
type Record struct {
	Chrom   string
	Feature string
	Start   int
	End     int
	Strand  byte

	// ID is the value of the attribute
	// requested when the line was parsed.
	ID string
}

// ParseRecord returns the Record described by the tab-delimited GTF or
// GFF3 line, using key as the identifying attribute.
func ParseRecord(line, key string) (Record, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return Record{}, ErrEmpty
	}

	fields := strings.Split(line, "\t")
	if len(fields) < numFields {
		return Record{}, fmt.Errorf("%w: too few fields (%d < %d): %q", ErrStructural, len(fields), numFields, line)
	}

	start, err := coord(fields[startField])
	if err != nil {
		return Record{}, err
	}
	if start == 0 {
		return Record{}, fmt.Errorf("%w: zero start in one-based coordinate: %q", ErrStructural, line)
	}
	end, err := coord(fields[endField])
	if err != nil {
		return Record{}, err
	}
	if len(fields[strandField]) != 1 {
		return Record{}, fmt.Errorf("%w: bad strand %q", ErrStructural, fields[strandField])
	}

	id, err := Attribute(fields[attributeField], key)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrAttribute, err)
	}

	return Record{
		Chrom:   fields[seqnameField],
		Feature: fields[featureField],
		Start:   feat.OneToZero(start),
		End:     end,
		Strand:  fields[strandField][0],
		ID:      id,
	}, nil
}

func coord(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: bad coordinate: %v", ErrStructural, err)
	}
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: coordinate out of range: %s", ErrStructural, s)
	}
	return int(v), nil
}
