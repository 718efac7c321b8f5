// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/biogo/store/interval"
)

// Region is a zero-based half-open interval on a chromosome.
type Region struct {
	Chrom      string
	Start, End int
}

// ParseRegion parses a samtools-style region, "chrom", "chrom:start" or
// "chrom:start-end", where start and end are one-based and inclusive.
// Thousands separators are permitted in positions.
func ParseRegion(s string) (Region, error) {
	chrom, pos, ok := strings.Cut(s, ":")
	if chrom == "" {
		return Region{}, fmt.Errorf("span: invalid region %q: no chromosome", s)
	}
	r := Region{Chrom: chrom, Start: 0, End: math.MaxInt}
	if !ok {
		return r, nil
	}
	pos = strings.ReplaceAll(pos, ",", "")
	first, last, hasEnd := strings.Cut(pos, "-")
	start, err := strconv.Atoi(first)
	if err != nil || start < 1 {
		return Region{}, fmt.Errorf("span: invalid region start %q", s)
	}
	r.Start = start - 1
	if hasEnd {
		r.End, err = strconv.Atoi(last)
		if err != nil || r.End < start {
			return Region{}, fmt.Errorf("span: invalid region end %q", s)
		}
	}
	return r, nil
}

// Index is a collection of interval trees of spans keyed by chromosome.
type Index map[string]*interval.IntTree

// NewIndex returns an Index of the spans in t.
func NewIndex(t Table) (Index, error) {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	idx := make(Index)
	for i, id := range ids {
		s := t[id]
		tree, ok := idx[s.Chrom]
		if !ok {
			tree = &interval.IntTree{}
			idx[s.Chrom] = tree
		}
		err := tree.Insert(spanInterval{id: id, uid: uintptr(i + 1), Span: s}, true)
		if err != nil {
			return nil, err
		}
	}
	for _, tree := range idx {
		tree.AdjustRanges()
	}
	return idx, nil
}

// Overlapping returns the identifiers of spans overlapping r, sorted
// lexically.
func (idx Index) Overlapping(r Region) []string {
	tree, ok := idx[r.Chrom]
	if !ok {
		return nil
	}
	hits := tree.Get(query(r))
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.(spanInterval).id
	}
	sort.Strings(ids)
	return ids
}

// Within returns the subset of t overlapping r.
func (t Table) Within(r Region) (Table, error) {
	idx, err := NewIndex(t)
	if err != nil {
		return nil, err
	}
	ids := idx.Overlapping(r)
	sub := make(Table, len(ids))
	for _, id := range ids {
		sub[id] = t[id]
	}
	return sub, nil
}

type spanInterval struct {
	id  string
	uid uintptr
	Span
}

func (s spanInterval) ID() uintptr { return s.uid }
func (s spanInterval) Range() interval.IntRange {
	return interval.IntRange{Start: s.Start, End: s.End}
}
func (s spanInterval) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return s.End > b.Start && s.Start < b.End
}

type query Region

func (q query) ID() uintptr { return 0 }
func (q query) Range() interval.IntRange {
	return interval.IntRange{Start: q.Start, End: q.End}
}
func (q query) Overlap(b interval.IntRange) bool {
	return q.End > b.Start && q.Start < b.End
}
