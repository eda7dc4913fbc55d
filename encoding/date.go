package encoding

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

// EncodeDate packs d into the 3-byte little-endian payload:
// day | (month << 5) | (year << 9).
func EncodeDate(d Date) []byte {
	v := uint32(d.Day) | uint32(d.Month)<<5 | uint32(d.Year)<<9

	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

// DecodeDate reverses EncodeDate. The payload must be exactly 3 bytes.
func DecodeDate(payload []byte) (Date, error) {
	if len(payload) != 3 {
		return Date{}, fmt.Errorf("%w: DATE payload must be 3 bytes, got %d", errs.ErrTruncatedBlob, len(payload))
	}

	v := uint32(payload[0]) | uint32(payload[1])<<8 | uint32(payload[2])<<16

	return Date{
		Day:   int(v & 0x1F),
		Month: int((v >> 5) & 0xF),
		Year:  int(v >> 9),
	}, nil
}
