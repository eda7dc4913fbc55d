package section

import (
	"encoding/binary"
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/errs"
	"github.com/adamchainz/mariadb-dyncol/format"
)

// DirEntry is one column directory entry: the column's name offset into
// the name region, its data offset into the data region, and its 4-bit
// type code. The on-wire width of the combined (data offset, type)
// field depends on the blob's size class (format.SizeClass).
type DirEntry struct {
	NameOffset uint16
	DataOffset uint32
	Type       format.ValueType
}

// Bytes encodes e as sc.EntrySize() bytes: a 2-byte name offset followed
// by the combined data-offset/type field, little-endian, truncated to
// sc.CombinedWidth bytes.
func (e DirEntry) Bytes(sc format.SizeClass) []byte {
	b := make([]byte, sc.EntrySize())
	binary.LittleEndian.PutUint16(b[0:2], e.NameOffset)

	combined := uint32(e.Type) | e.DataOffset<<4
	combinedBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(combinedBytes, combined)
	copy(b[2:], combinedBytes[:sc.CombinedWidth])

	return b
}

// ParseDirEntry reads one directory entry of width sc.EntrySize() from
// the front of data.
func ParseDirEntry(data []byte, sc format.SizeClass) (e DirEntry, err error) {
	if len(data) < sc.EntrySize() {
		return DirEntry{}, fmt.Errorf("%w: directory entry shorter than %d bytes", errs.ErrTruncatedBlob, sc.EntrySize())
	}

	nameOffset := binary.LittleEndian.Uint16(data[0:2])

	combinedBytes := make([]byte, 4)
	copy(combinedBytes, data[2:2+sc.CombinedWidth])
	combined := binary.LittleEndian.Uint32(combinedBytes)

	typeMask := uint32(1)<<4 - 1
	valueType := format.ValueType(combined & typeMask)
	dataOffset := combined >> 4

	return DirEntry{
		NameOffset: nameOffset,
		DataOffset: dataOffset,
		Type:       valueType,
	}, nil
}
