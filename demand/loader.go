// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: Read comma-separated demand tables into OD records.
// Format:
//   - Fields are separated by ',' and trimmed; there is no quoting.
//   - Lines beginning with '#' are comments; blank or whitespace-only lines are skipped.
//   - The first remaining line is the header; columns are matched by name.
//   - Only recognized columns must be unique; other header names are ignored.
// Policy:
//   - A load either returns every row in file order or fails with no partial result.

package demand

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
)

// Column names recognized in demand tables.
const (
	ColumnOrigin          = "origin"
	ColumnDestination     = "destination"
	ColumnVolume          = "volume"
	ColumnOriginZone      = "origin_zone"
	ColumnDestinationZone = "destination_zone"
)

const (
	fieldSeparator = ","
	commentPrefix  = "#"

	// maxLineBytes bounds a single line of input.
	maxLineBytes = 1 << 20
)

// LoadOption configures a loader call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	log logr.Logger
}

// WithLogger sets the logger that receives V(1) progress messages.
// By default nothing is logged.
func WithLogger(log logr.Logger) LoadOption {
	return func(o *loadOptions) { o.log = log }
}

func newLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// LoadODPairs reads OD pairs from a table with the columns origin,
// destination and volume. Other columns are ignored. Rows are returned in
// file order, neither sorted nor deduplicated.
//
// Errors: *FormatError (matching ErrFormat) for malformed input, or the
// wrapped read error of r.
func LoadODPairs(r io.Reader, opts ...LoadOption) ([]OriginDestination, error) {
	o := newLoadOptions(opts)

	t, err := newTable(r, ColumnOrigin, ColumnDestination, ColumnVolume)
	if err != nil {
		return nil, err
	}
	o.log.V(1).Info("Resolved demand table header", "columns", t.width)

	var pairs []OriginDestination
	for {
		ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		od, err := t.od()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, od)
	}
	o.log.V(1).Info("Loaded OD pairs", "count", len(pairs), "lines", t.line)

	return pairs, nil
}

// LoadClusteredODPairs reads clustered OD pairs. The columns origin,
// destination and volume are required; origin_zone and destination_zone are
// optional and only used when both are present. Without them every record
// carries InvalidZone on both sides.
//
// Errors: as LoadODPairs; zone ids must be non-negative integers.
func LoadClusteredODPairs(r io.Reader, opts ...LoadOption) ([]ClusteredOriginDestination, error) {
	o := newLoadOptions(opts)

	t, err := newTable(r, ColumnOrigin, ColumnDestination, ColumnVolume)
	if err != nil {
		return nil, err
	}
	_, hasOrigin := t.cols[ColumnOriginZone]
	_, hasDest := t.cols[ColumnDestinationZone]
	zoned := hasOrigin && hasDest
	o.log.V(1).Info("Resolved demand table header", "columns", t.width, "zoned", zoned)

	var pairs []ClusteredOriginDestination
	for {
		ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		od, err := t.od()
		if err != nil {
			return nil, err
		}
		rec := ClusteredOriginDestination{
			OriginDestination: od,
			OriginZone:        InvalidZone,
			DestinationZone:   InvalidZone,
		}
		if zoned {
			oz, err := t.field(ColumnOriginZone)
			if err != nil {
				return nil, err
			}
			dz, err := t.field(ColumnDestinationZone)
			if err != nil {
				return nil, err
			}
			rec.OriginZone, rec.DestinationZone = NewZone(oz), NewZone(dz)
		}
		pairs = append(pairs, rec)
	}
	o.log.V(1).Info("Loaded clustered OD pairs", "count", len(pairs), "lines", t.line, "zoned", zoned)

	return pairs, nil
}

// LoadODPairsFile opens path and calls LoadODPairs.
func LoadODPairsFile(path string, opts ...LoadOption) ([]OriginDestination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demand: open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := LoadODPairs(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("demand: load %s: %w", path, err)
	}

	return pairs, nil
}

// LoadClusteredODPairsFile opens path and calls LoadClusteredODPairs.
func LoadClusteredODPairsFile(path string, opts ...LoadOption) ([]ClusteredOriginDestination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demand: open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := LoadClusteredODPairs(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("demand: load %s: %w", path, err)
	}

	return pairs, nil
}

// table is a line-oriented reader over a header-named, comma-separated source.
type table struct {
	sc     *bufio.Scanner
	line   int            // physical line of the current row
	width  int            // number of header columns
	cols   map[string]int // recognized column name → field index
	fields []string       // current row, trimmed
}

// knownColumns are the header names a table resolves; anything else is ignored.
var knownColumns = map[string]bool{
	ColumnOrigin:          true,
	ColumnDestination:     true,
	ColumnVolume:          true,
	ColumnOriginZone:      true,
	ColumnDestinationZone: true,
}

// newTable reads up to and including the header and checks that every
// required column is present. A recognized column listed twice is an error.
func newTable(r io.Reader, required ...string) (*table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	t := &table{sc: sc}

	ok, err := t.scan()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &FormatError{Line: t.line, Err: ErrEmptyInput}
	}

	t.width = len(t.fields)
	t.cols = make(map[string]int, len(knownColumns))
	for i, name := range t.fields {
		if !knownColumns[name] {
			continue
		}
		if _, dup := t.cols[name]; dup {
			return nil, &FormatError{Line: t.line, Column: name, Err: ErrDuplicateColumn}
		}
		t.cols[name] = i
	}
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			return nil, &FormatError{Line: t.line, Column: name, Err: ErrMissingColumn}
		}
	}

	return t, nil
}

// scan advances to the next non-comment, non-blank line and splits it.
// It returns false at end of input.
func (t *table) scan() (bool, error) {
	for t.sc.Scan() {
		t.line++
		raw := t.sc.Text()
		if strings.HasPrefix(raw, commentPrefix) {
			continue
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		t.fields = strings.Split(text, fieldSeparator)
		for i := range t.fields {
			t.fields[i] = strings.TrimSpace(t.fields[i])
		}
		return true, nil
	}
	if err := t.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return false, &FormatError{Line: t.line + 1, Err: ErrLineTooLong}
		}
		return false, fmt.Errorf("demand: read: %w", err)
	}

	return false, nil
}

// next advances to the next data row and checks its field count.
func (t *table) next() (bool, error) {
	ok, err := t.scan()
	if err != nil || !ok {
		return false, err
	}
	if len(t.fields) != t.width {
		return false, &FormatError{
			Line:  t.line,
			Value: strconv.Itoa(len(t.fields)),
			Err:   ErrFieldCount,
		}
	}

	return true, nil
}

// od parses the three OD columns of the current row.
func (t *table) od() (OriginDestination, error) {
	var (
		od  OriginDestination
		err error
	)
	if od.Origin, err = t.field(ColumnOrigin); err != nil {
		return od, err
	}
	if od.Destination, err = t.field(ColumnDestination); err != nil {
		return od, err
	}
	if od.Volume, err = t.field(ColumnVolume); err != nil {
		return od, err
	}

	return od, nil
}

// field parses column name of the current row as a non-negative int.
func (t *table) field(name string) (int, error) {
	raw := t.fields[t.cols[name]]
	v, err := strconv.Atoi(raw)
	if err != nil {
		cause := ErrBadField
		if errors.Is(err, strconv.ErrRange) {
			cause = ErrOverflow
		}
		return 0, &FormatError{Line: t.line, Column: name, Value: raw, Err: cause}
	}
	if v < 0 {
		return 0, &FormatError{Line: t.line, Column: name, Value: raw, Err: ErrNegativeValue}
	}

	return v, nil
}
