// Package hash computes content fingerprints for packed dyncol blobs.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a packed blob's bytes. Two blobs
// with identical content always produce the same fingerprint; this is a
// convenience for caching/deduplication, not part of the wire format.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
