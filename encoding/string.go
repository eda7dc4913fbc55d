package encoding

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
	"github.com/adamchainz/mariadb-dyncol/format"
)

// EncodeString emits a charset-prefixed UTF-8 payload, always tagged
// utf8mb4 (0x2D) as COLUMN_CREATE does.
func EncodeString(s string) []byte {
	payload := make([]byte, 1+len(s))
	payload[0] = byte(format.CharsetUTF8MB4)
	copy(payload[1:], s)

	return payload
}

// DecodeString reverses EncodeString, accepting either the utf8 (0x21)
// or utf8mb4 (0x2D) charset byte. Any other charset byte is refused.
func DecodeString(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: STRING payload is empty, missing charset byte", errs.ErrTruncatedBlob)
	}

	charset := format.Charset(payload[0])
	if !charset.Supported() {
		return "", fmt.Errorf("%w: charset byte 0x%02x", errs.ErrUnsupportedCharset, payload[0])
	}

	return string(payload[1:]), nil
}
