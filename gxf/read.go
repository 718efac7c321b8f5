// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gxf

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}

	// bgzfMagic is the gzip header prefix of a BGZF block, including
	// the FEXTRA flag, XLEN and the "BC" subfield identifier.
	bgzfMagic = []byte{0x1f, 0x8b, 0x08, 0x04, 0, 0, 0, 0, 0, 0xff, 0x06, 0x00, 'B', 'C'}
)

// ReadFile returns the complete decompressed contents of the annotation
// file at path. See Read for the handling of compressed input.
func ReadFile(path string, rd int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Read(f, rd)
}

// Read returns the complete decompressed contents of r. Compression is
// detected from the stream header rather than a file name. BGZF input
// is decompressed using rd concurrent readers, other gzip input is read
// as a sequence of gzip members and anything else is read verbatim.
func Read(r io.Reader, rd int) (string, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(bgzfMagic))
	if err != nil && err != io.EOF {
		return "", err
	}

	var src io.Reader = br
	switch {
	case isBGZF(magic):
		bg, err := bgzf.NewReader(br, rd)
		if err != nil {
			return "", err
		}
		defer bg.Close()
		src = bg
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		src = gz
	}

	var buf bytes.Buffer
	_, err = buf.ReadFrom(src)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isBGZF(h []byte) bool {
	if len(h) < len(bgzfMagic) {
		return false
	}
	// Bytes 4 to 9 hold MTIME, XFL and OS, which vary between writers.
	return bytes.Equal(h[:4], bgzfMagic[:4]) && bytes.Equal(h[10:], bgzfMagic[10:])
}
