// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gxf

import (
	"fmt"
	"strings"
)

// Attribute returns the value of the attribute key in the GTF or GFF3
// attribute field f. Both the GTF
//
//	gene_id "ENSG00000223972.5"; gene_name "DDX11L1";
//
// and GFF3
//
//	ID=ENSG00000223972.5;gene_name=DDX11L1
//
// styles are accepted, and may be mixed. When a key appears more than
// once, the last value is returned.
//
// Every non-empty field of f must be a valid key/value pair, even when
// the requested key has already been found.
func Attribute(f, key string) (string, error) {
	if f == "" {
		return "", ErrEmpty
	}

	var (
		value string
		found bool
	)
	for rest := f; rest != ""; {
		var field string
		i := strings.IndexByte(rest, ';')
		if i < 0 {
			// The final field need not be terminated.
			field, rest = rest, ""
		} else {
			field, rest = rest[:i], rest[i+1:]
		}
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		k, v, err := pair(field)
		if err != nil {
			return "", err
		}
		if k == key {
			value = v
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("%w %q in: %s", ErrMissingIdentifier, key, f)
	}
	return value, nil
}

// pair splits a single trimmed attribute field at the first space or
// '=' and returns the key and the unquoted value.
func pair(field string) (key, value string, err error) {
	i := strings.IndexAny(field, " =")
	if i < 0 {
		return "", "", fmt.Errorf("%w: %s", ErrMalformedPair, field)
	}
	key = field[:i]
	value = strings.TrimSpace(strings.Trim(strings.TrimSpace(field[i+1:]), `"`))
	return key, value, nil
}
