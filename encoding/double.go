package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

// EncodeDouble emits the 8-byte little-endian IEEE-754 payload for v.
// NaN and +/-Inf are rejected; negative zero is normalized to positive
// zero, matching the bit pattern the MariaDB server accepts.
func EncodeDouble(v float64) ([]byte, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %v is not finite", errs.ErrFloatNotFinite, v)
	}

	if v == 0 {
		v = 0 // normalize -0.0 to +0.0
	}

	payload := make([]byte, 8)
	binary.LittleEndian.PutUint64(payload, math.Float64bits(v))

	return payload, nil
}

// DecodeDouble reverses EncodeDouble. The payload must be exactly 8 bytes.
func DecodeDouble(payload []byte) (float64, error) {
	if len(payload) != 8 {
		return 0, fmt.Errorf("%w: DOUBLE payload must be 8 bytes, got %d", errs.ErrTruncatedBlob, len(payload))
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(payload)), nil
}
