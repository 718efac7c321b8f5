// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var indexTable = Table{
	"A": {Chrom: "chr1", Strand: '+', Start: 100, End: 200},
	"B": {Chrom: "chr1", Strand: '-', Start: 150, End: 400},
	"C": {Chrom: "chr1", Strand: '+', Start: 400, End: 500},
	"D": {Chrom: "chr2", Strand: '+', Start: 0, End: 1000},
}

func TestIndexOverlapping(t *testing.T) {
	idx, err := NewIndex(indexTable)
	require.NoError(t, err)

	for _, test := range []struct {
		r    Region
		want []string
	}{
		{r: Region{Chrom: "chr1", Start: 0, End: 100}, want: nil},
		{r: Region{Chrom: "chr1", Start: 0, End: 101}, want: []string{"A"}},
		{r: Region{Chrom: "chr1", Start: 199, End: 200}, want: []string{"A", "B"}},
		{r: Region{Chrom: "chr1", Start: 400, End: 401}, want: []string{"C"}},
		{r: Region{Chrom: "chr1", Start: 0, End: math.MaxInt}, want: []string{"A", "B", "C"}},
		{r: Region{Chrom: "chr2", Start: 999, End: 1000}, want: []string{"D"}},
		{r: Region{Chrom: "chr3", Start: 0, End: 1000}, want: nil},
	} {
		got := idx.Overlapping(test.r)
		if test.want == nil {
			assert.Empty(t, got, "%+v", test.r)
			continue
		}
		assert.Equal(t, test.want, got, "%+v", test.r)
	}
}

func TestTableWithin(t *testing.T) {
	got, err := indexTable.Within(Region{Chrom: "chr1", Start: 350, End: 450})
	require.NoError(t, err)
	assert.Equal(t, Table{"B": indexTable["B"], "C": indexTable["C"]}, got)
}

func TestParseRegion(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Region
		err  bool
	}{
		{in: "chr1", want: Region{Chrom: "chr1", Start: 0, End: math.MaxInt}},
		{in: "chr1:100", want: Region{Chrom: "chr1", Start: 99, End: math.MaxInt}},
		{in: "chr1:100-200", want: Region{Chrom: "chr1", Start: 99, End: 200}},
		{in: "chrX:1,000-2,000", want: Region{Chrom: "chrX", Start: 999, End: 2000}},
		{in: "HLA-A*01:01:1-5", err: true},
		{in: "", err: true},
		{in: ":1-10", err: true},
		{in: "chr1:0-10", err: true},
		{in: "chr1:20-10", err: true},
		{in: "chr1:a-10", err: true},
	} {
		got, err := ParseRegion(test.in)
		if test.err {
			assert.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	got := Summarize(indexTable)
	assert.Equal(t, 4, got.N)
	assert.Equal(t, 100.0, got.Min)
	assert.Equal(t, 1000.0, got.Max)
	assert.InDelta(t, 362.5, got.Mean, 1e-9)
	assert.Equal(t, []float64{100, 100, 250, 1000}, indexTable.Lengths())

	odd := Table{"A": indexTable["A"], "B": indexTable["B"], "D": indexTable["D"]}
	assert.Equal(t, 250.0, Summarize(odd).Median)
}
