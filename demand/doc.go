// Package demand models travel demand between network nodes and loads it
// from comma-separated tables.
//
// Two value types describe demand:
//
//   - OriginDestination: Volume trips from Origin to Destination,
//     ordered by (Origin, Destination).
//   - ClusteredOriginDestination: an OriginDestination plus the origin and
//     destination Zone, ordered by (OriginZone, DestinationZone, Origin,
//     Destination). HasSameZones groups pairs into zone-to-zone demand
//     (see AggregateByZone).
//
// A Zone is either valid (NewZone) or InvalidZone. Records loaded from a
// table without zone columns carry InvalidZone on both sides, so "no zone"
// never collides with a real zone id.
//
// # Table format
//
//	# comment lines start with '#'
//	origin, destination, volume, origin_zone, destination_zone
//	1, 2, 5, 10, 20
//	3, 4, 7, 10, 21
//
// Fields are comma separated and trimmed; quoting is not supported. Columns
// are matched by header name in any order and unknown columns are ignored.
// All values are non-negative base-10 integers.
//
// # Errors
//
// Every malformed input yields a *FormatError (errors.Is(err, ErrFormat))
// whose Err is one of ErrEmptyInput, ErrMissingColumn, ErrDuplicateColumn,
// ErrFieldCount, ErrLineTooLong, ErrBadField, ErrOverflow or
// ErrNegativeValue. Loads are all-or-nothing.
package demand
