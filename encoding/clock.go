package encoding

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

// EncodeClock packs c into a 3-byte payload when microsecond is zero, or
// a 6-byte payload otherwise.
//
// 3-byte layout (low 3 bytes of a u32): bits 0..5 second, 6..11 minute,
// 12.. hour.
//
// 6-byte layout (low 6 bytes of a u64): bits 0..19 microsecond, 20..25
// second, 26..31 minute, 32.. hour.
func EncodeClock(c Clock) []byte {
	if c.Microsecond == 0 {
		v := uint32(c.Second) | uint32(c.Minute)<<6 | uint32(c.Hour)<<12

		return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
	}

	v := uint64(c.Microsecond) | uint64(c.Second)<<20 | uint64(c.Minute)<<26 | uint64(c.Hour)<<32

	return []byte{
		byte(v), byte(v >> 8), byte(v >> 16),
		byte(v >> 24), byte(v >> 32), byte(v >> 40),
	}
}

// DecodeClock reverses EncodeClock, dispatching on payload length (3 or 6).
func DecodeClock(payload []byte) (Clock, error) {
	switch len(payload) {
	case 3:
		v := uint32(payload[0]) | uint32(payload[1])<<8 | uint32(payload[2])<<16

		return Clock{
			Second: int(v & 0x3F),
			Minute: int((v >> 6) & 0x3F),
			Hour:   int(v >> 12),
		}, nil
	case 6:
		v := uint64(payload[0]) | uint64(payload[1])<<8 | uint64(payload[2])<<16 |
			uint64(payload[3])<<24 | uint64(payload[4])<<32 | uint64(payload[5])<<40

		return Clock{
			Microsecond: int(v & 0xFFFFF),
			Second:      int((v >> 20) & 0x3F),
			Minute:      int((v >> 26) & 0x3F),
			Hour:        int(v >> 32),
		}, nil
	default:
		return Clock{}, fmt.Errorf("%w: TIME payload must be 3 or 6 bytes, got %d", errs.ErrTruncatedBlob, len(payload))
	}
}
