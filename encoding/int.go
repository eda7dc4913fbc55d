package encoding

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

// MinInt is the lowest value representable by the INT payload codec:
// -(2**32 - 1). Values below this, even though they fit in int64, are
// out of range for this type and must be rejected.
const MinInt = -(1<<32 - 1)

// EncodeInt zigzag-maps v and emits the minimal little-endian byte
// sequence needed to hold the result; zero produces an empty payload.
//
// v must lie in [MinInt, math.MaxInt64]; the caller is responsible for
// routing non-negative values above math.MaxInt64 to EncodeUint instead
// (Go's int64 cannot represent them).
func EncodeInt(v int64) ([]byte, error) {
	if v < MinInt {
		return nil, fmt.Errorf("%w: %d is below the minimum representable INT value %d", errs.ErrIntegerOutOfRange, v, MinInt)
	}

	var uval uint64
	if v >= 0 {
		uval = uint64(v) << 1
	} else {
		uval = (uint64(-(v + 1)) << 1) | 1
	}

	return minimalLE(uval), nil
}

// DecodeInt reverses EncodeInt. An empty payload decodes to zero.
func DecodeInt(payload []byte) (int64, error) {
	if len(payload) > 8 {
		return 0, fmt.Errorf("%w: INT payload of %d bytes exceeds 8", errs.ErrTruncatedBlob, len(payload))
	}

	uval := leToUint64(payload)
	if uval&1 != 0 {
		return -int64(uval>>1) - 1, nil
	}

	return int64(uval >> 1), nil
}

// minimalLE returns the little-endian byte sequence of v with trailing
// (high) zero bytes elided; zero produces an empty slice.
func minimalLE(v uint64) []byte {
	n := 0
	for shift := uint(0); shift < 64; shift += 8 {
		if v>>shift != 0 {
			n = int(shift)/8 + 1
		}
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(v >> (8 * uint(i)))
	}

	return out
}

// leToUint64 interprets payload as a little-endian unsigned integer of
// its own byte length (up to 8 bytes).
func leToUint64(payload []byte) uint64 {
	var v uint64
	for i, b := range payload {
		v |= uint64(b) << (8 * uint(i))
	}

	return v
}
