// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of span lengths in a Table.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Lengths returns the lengths of the spans in t in ascending order.
func (t Table) Lengths() []float64 {
	l := make([]float64, 0, len(t))
	for _, s := range t {
		l = append(l, float64(s.Len()))
	}
	sort.Float64s(l)
	return l
}

// Summarize returns the length summary of t. The zero Summary is
// returned for an empty table.
func Summarize(t Table) Summary {
	if len(t) == 0 {
		return Summary{}
	}
	l := t.Lengths()
	return Summary{
		N:      len(l),
		Min:    floats.Min(l),
		Max:    floats.Max(l),
		Mean:   stat.Mean(l, nil),
		Median: stat.Quantile(0.5, stat.Empirical, l, nil),
	}
}
