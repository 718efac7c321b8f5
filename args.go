// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// argError is a command argument validation failure.
type argError struct {
	kind string // "input", "output", "threads" or "feature"
	msg  string
}

func (e argError) Error() string { return fmt.Sprintf("invalid %s: %s", e.kind, e.msg) }

var inputExts = map[string]bool{
	".gtf":  true,
	".gff":  true,
	".gff3": true,
	".gz":   true,
}

// validate checks o for validity. ncpu is the number of logical CPUs
// available.
func (o options) validate(ncpu int) error {
	if o.input == "" {
		return argError{"input", "no input file given"}
	}
	fi, err := os.Stat(o.input)
	switch {
	case err != nil:
		return argError{"input", fmt.Sprintf("file %q does not exist", o.input)}
	case fi.IsDir():
		return argError{"input", fmt.Sprintf("%q is a directory", o.input)}
	case !inputExts[filepath.Ext(o.input)]:
		return argError{"input", fmt.Sprintf("file %q is not a GTF or GFF3 file, please specify the correct format", o.input)}
	case fi.Size() == 0:
		return argError{"input", fmt.Sprintf("file %q is empty", o.input)}
	}

	if filepath.Ext(o.output) != ".chrom" {
		return argError{"output", fmt.Sprintf("file %q is not a .chrom file", o.output)}
	}

	switch {
	case o.threads < 1:
		return argError{"threads", "number of threads must be greater than 0"}
	case o.threads > ncpu:
		return argError{"threads", "number of threads must be less than or equal to the number of logical CPUs"}
	}

	if o.feature == "" {
		return argError{"feature", "feature must not be empty"}
	}
	return nil
}
