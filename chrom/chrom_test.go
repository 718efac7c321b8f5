// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrom

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kortschak/gxf2chrom/span"
)

var table = span.Table{
	"NP_2": {Chrom: "chr1", Strand: '-', Start: 500, End: 900},
	"NP_1": {Chrom: "chr1", Strand: '+', Start: 99, End: 300},
	"NP_3": {Chrom: "chrM", Strand: '.', Start: 0, End: 12},
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))
	assert.Equal(t, "NP_1\tchr1\t+\t99\t300\n"+
		"NP_2\tchr1\t-\t500\t900\n"+
		"NP_3\tchrM\t.\t0\t12\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestReadTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))
	got, err := ReadTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("A\tchr1\t+\t1\t2\r\n\nB\tchr2\t-\t3\t4"))
	id, s, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "A", id)
	assert.Equal(t, span.Span{Chrom: "chr1", Strand: '+', Start: 1, End: 2}, s)

	id, s, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "B", id)
	assert.Equal(t, span.Span{Chrom: "chr2", Strand: '-', Start: 3, End: 4}, s)

	_, _, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReadTableErrors(t *testing.T) {
	for _, in := range []string{
		"A\tchr1\t+\t1\n",
		"A\tchr1\t+\t1\t2\textra\n",
		"A\tchr1\t+-\t1\t2\n",
		"A\tchr1\t+\tone\t2\n",
		"A\tchr1\t+\t1\ttwo\n",
		"A\tchr1\t+\t1\t2\nA\tchr1\t+\t1\t2\n",
	} {
		_, err := ReadTable(strings.NewReader(in))
		assert.Error(t, err, "%q", in)
	}
}

func TestGFFWrite(t *testing.T) {
	var buf bytes.Buffer
	g := GFF{Source: "gxf2chrom", Feature: "CDS_span", Tag: "protein_id"}
	require.NoError(t, g.Write(&buf, table))

	var got []*gff.Feature
	sc := featio.NewScanner(gff.NewReader(&buf))
	for sc.Next() {
		got = append(got, sc.Feat().(*gff.Feature))
	}
	require.NoError(t, sc.Error())
	require.Len(t, got, 3)

	for i, want := range []struct {
		id     string
		strand seq.Strand
	}{
		{id: "NP_1", strand: seq.Plus},
		{id: "NP_2", strand: seq.Minus},
		{id: "NP_3", strand: seq.None},
	} {
		f := got[i]
		s := table[want.id]
		assert.Equal(t, want.id, f.FeatAttributes.Get("protein_id"))
		assert.Equal(t, s.Chrom, f.SeqName)
		assert.Equal(t, s.Start, f.FeatStart)
		assert.Equal(t, s.End, f.FeatEnd)
		assert.Equal(t, want.strand, f.FeatStrand)
		assert.Equal(t, "gxf2chrom", f.Source)
		assert.Equal(t, "CDS_span", f.Feature)
	}
}
