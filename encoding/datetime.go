package encoding

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

// EncodeDateTime concatenates the DATE payload (3 bytes) with the TIME
// payload (3 or 6 bytes).
func EncodeDateTime(dt DateTime) []byte {
	return append(EncodeDate(dt.Date), EncodeClock(dt.Clock)...)
}

// DecodeDateTime splits payload at offset 3 into a DATE payload and a
// TIME payload, decoding each in turn.
func DecodeDateTime(payload []byte) (DateTime, error) {
	if len(payload) != 6 && len(payload) != 9 {
		return DateTime{}, fmt.Errorf("%w: DATETIME payload must be 6 or 9 bytes, got %d", errs.ErrTruncatedBlob, len(payload))
	}

	date, err := DecodeDate(payload[:3])
	if err != nil {
		return DateTime{}, err
	}

	clock, err := DecodeClock(payload[3:])
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{Date: date, Clock: clock}, nil
}
