package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

// EncodeUint emits the fixed 8-byte little-endian payload for an
// unsigned value. UINT is used only for non-negative values above
// math.MaxInt64; smaller values should go through EncodeInt instead so
// they get the minimal-width INT encoding MariaDB produces.
func EncodeUint(v uint64) []byte {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint64(payload, v)

	return payload
}

// DecodeUint reverses EncodeUint. The payload must be exactly 8 bytes.
func DecodeUint(payload []byte) (uint64, error) {
	if len(payload) != 8 {
		return 0, fmt.Errorf("%w: UINT payload must be 8 bytes, got %d", errs.ErrTruncatedBlob, len(payload))
	}

	return binary.LittleEndian.Uint64(payload), nil
}
