// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gxf

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annotation = "##gff-version 3\n" +
	"chr1\tHAVANA\tCDS\t100\t200\t.\t+\t0\tprotein_id=A\n" +
	"chr1\tHAVANA\tCDS\t150\t300\t.\t+\t0\tprotein_id=A\n"

func TestReadPlain(t *testing.T) {
	got, err := Read(bytes.NewReader([]byte(annotation)), 1)
	require.NoError(t, err)
	assert.Equal(t, annotation, got)
}

func TestReadEmpty(t *testing.T) {
	got, err := Read(bytes.NewReader(nil), 1)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReadMultiMemberGzip(t *testing.T) {
	var buf bytes.Buffer
	half := len(annotation) / 2
	for _, part := range []string{annotation[:half], annotation[half:]} {
		gz := gzip.NewWriter(&buf)
		_, err := gz.Write([]byte(part))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
	}

	got, err := Read(&buf, 1)
	require.NoError(t, err)
	assert.Equal(t, annotation, got)
}

func TestReadBGZF(t *testing.T) {
	var buf bytes.Buffer
	w := bgzf.NewWriter(&buf, 1)
	_, err := w.Write([]byte(annotation))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.True(t, isBGZF(buf.Bytes()[:len(bgzfMagic)]))

	for _, rd := range []int{1, 4} {
		got, err := Read(bytes.NewReader(buf.Bytes()), rd)
		require.NoError(t, err)
		assert.Equal(t, annotation, got)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gff3")
	require.NoError(t, os.WriteFile(path, []byte(annotation), 0o644))

	got, err := ReadFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, annotation, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.gtf"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsBGZF(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(annotation))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	assert.False(t, isBGZF(buf.Bytes()))
	assert.False(t, isBGZF([]byte(annotation)))
	assert.False(t, isBGZF(nil))
}
