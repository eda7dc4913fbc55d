// Package section implements the fixed wire structs that sit between a
// dyncol blob's header and its name/data regions: the header itself and
// the variable-width column directory entries.
package section

import (
	"encoding/binary"
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
	"github.com/adamchainz/mariadb-dyncol/format"
)

// HeaderSize is the fixed byte size of Header on the wire.
const HeaderSize = 5

// Header is the 5-byte prefix of a dyncol blob: flags, column count,
// and the byte length of the concatenated name region.
type Header struct {
	SizeClass   format.SizeClass
	ColumnCount uint16
	NamesLength uint16
}

// Bytes encodes h as its 5-byte wire representation.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	b[0] = format.FormatFlagTag | h.SizeClass.Class
	binary.LittleEndian.PutUint16(b[1:3], h.ColumnCount)
	binary.LittleEndian.PutUint16(b[3:5], h.NamesLength)

	return b
}

// ParseHeader reads a Header from the front of data.
func ParseHeader(data []byte) (h Header, consumed int, err error) {
	if len(data) < HeaderSize {
		return Header{}, 0, fmt.Errorf("%w: blob shorter than header (%d bytes)", errs.ErrTruncatedBlob, len(data))
	}

	flags := data[0]
	if flags&format.FormatFlagMask != format.FormatFlagTag {
		return Header{}, 0, fmt.Errorf("%w: unrecognized format flags 0x%02x", errs.ErrUnknownFormatFlags, flags)
	}

	sc, ok := format.SizeClassByIndex(flags & format.SizeClassMask)
	if !ok {
		return Header{}, 0, fmt.Errorf("%w: unrecognized size class in flags 0x%02x", errs.ErrUnknownFormatFlags, flags)
	}

	h = Header{
		SizeClass:   sc,
		ColumnCount: binary.LittleEndian.Uint16(data[1:3]),
		NamesLength: binary.LittleEndian.Uint16(data[3:5]),
	}

	return h, HeaderSize, nil
}
