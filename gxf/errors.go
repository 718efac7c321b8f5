// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gxf

import "errors"

var (
	// ErrEmpty is returned when an attribute field or an annotation
	// line is empty.
	ErrEmpty = errors.New("gxf: empty input")

	// ErrMalformedPair is returned when a non-empty attribute field
	// has neither a space nor an '=' separating its key and value.
	ErrMalformedPair = errors.New("gxf: invalid attribute pair")

	// ErrMissingIdentifier is returned when the requested attribute
	// is not present in an otherwise well-formed attribute field.
	ErrMissingIdentifier = errors.New("gxf: missing identifier attribute")

	// ErrStructural is returned for lines with too few columns,
	// non-numeric coordinates or an invalid strand.
	ErrStructural = errors.New("gxf: invalid line")

	// ErrAttribute is returned by ParseRecord when the attribute
	// column cannot be used. It wraps the underlying attribute error.
	ErrAttribute = errors.New("gxf: error parsing attribute")
)
