// SPDX-License-Identifier: MIT

package demand

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("demand: malformed demand table")

// Causes carried by FormatError.Err.
var (
	// ErrEmptyInput indicates a source without a header line.
	ErrEmptyInput = errors.New("demand: no header line")

	// ErrMissingColumn indicates a required column absent from the header.
	ErrMissingColumn = errors.New("demand: missing required column")

	// ErrDuplicateColumn indicates a column name listed twice in the header.
	ErrDuplicateColumn = errors.New("demand: duplicate column")

	// ErrFieldCount indicates a data row whose field count differs from the header's.
	ErrFieldCount = errors.New("demand: wrong number of fields")

	// ErrLineTooLong indicates a line longer than the reader accepts (1 MiB).
	ErrLineTooLong = errors.New("demand: line too long")

	// ErrBadField indicates a field that is not a base-10 integer.
	ErrBadField = errors.New("demand: invalid integer field")

	// ErrOverflow indicates an integer field, or an aggregated volume, outside the range of int.
	ErrOverflow = errors.New("demand: integer field overflows")

	// ErrNegativeValue indicates a negative node id, zone id or volume.
	ErrNegativeValue = errors.New("demand: negative value")
)

// FormatError reports why a demand table could not be loaded.
//
// Line is 1-based and counts every physical line, comments included.
// Column names the offending column when one applies.
type FormatError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	switch {
	case e.Column != "" && e.Value != "":
		return fmt.Sprintf("%v: line %d, column %q, value %q", e.Err, e.Line, e.Column, e.Value)
	case e.Column != "":
		return fmt.Sprintf("%v: line %d, column %q", e.Err, e.Line, e.Column)
	default:
		return fmt.Sprintf("%v: line %d", e.Err, e.Line)
	}
}

// Unwrap returns the cause, one of the Err* sentinels of this package.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) hold for every FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
