// Package dyncol implements MariaDB's named Dynamic Columns binary blob
// format: Pack serializes a mapping of string keys to typed values into
// the exact byte layout MariaDB's COLUMN_CREATE produces; Unpack parses
// a blob back into a mapping, accepting anything COLUMN_CHECK accepts.
//
// # Basic usage
//
//	packed, err := dyncol.Pack(dyncol.Map{
//	    "name": "widget",
//	    "price": 19.99,
//	    "tags": dyncol.Map{"color": "red"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	m, err := dyncol.Unpack(packed)
//	if err != nil {
//	    return err
//	}
//
// # Supported values
//
// Go int/uint family values, float32/float64, string, Date, Clock,
// DateTime, and nested Map/map[string]any. A nil value is dropped before
// encoding — the format's only representation of null is "key absent".
//
// # Errors
//
// Every error returned by Pack or Unpack wraps exactly one of the four
// category sentinels in package errs: ErrType, ErrValue, ErrLimit,
// ErrNotSupported. Discriminate with errors.Is.
//
// # Package structure
//
// This package is a thin convenience wrapper around package blob, which
// does the actual assembly/parsing, package encoding (per-type payload
// codecs), and package section (header/directory wire structs). Use
// those packages directly for lower-level access; use package archive to
// compress a packed blob for cold storage, and Fingerprint to
// content-address one.
package dyncol

import (
	"github.com/adamchainz/mariadb-dyncol/blob"
	"github.com/adamchainz/mariadb-dyncol/encoding"
	"github.com/adamchainz/mariadb-dyncol/internal/hash"
)

// Map is the in-memory representation of a dyncol mapping: string keys
// to supported scalar or nested values.
type Map = blob.Map

// Date is a calendar date with no time-of-day component.
type Date = encoding.Date

// Clock is a wall-clock time of day, optionally carrying microseconds.
type Clock = encoding.Clock

// DateTime is a combined calendar date and wall-clock time.
type DateTime = encoding.DateTime

// Pack serializes m into its on-wire dyncol byte representation.
func Pack(m Map) ([]byte, error) {
	return blob.Pack(m)
}

// Unpack parses a dyncol blob back into a Map.
func Unpack(data []byte) (Map, error) {
	return blob.Unpack(data)
}

// Fingerprint computes the xxHash64 of a packed blob's bytes, for
// cheaply deduplicating or caching blobs with identical content. It is
// not part of the wire format.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
