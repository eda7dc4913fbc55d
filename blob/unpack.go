package blob

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/encoding"
	"github.com/adamchainz/mariadb-dyncol/errs"
	"github.com/adamchainz/mariadb-dyncol/format"
	"github.com/adamchainz/mariadb-dyncol/section"
)

type extent struct {
	name    string
	payload []byte
	typ     format.ValueType
}

// Unpack parses a complete dyncol blob back into a Map.
func Unpack(data []byte) (Map, error) {
	h, offset, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	entries := make([]section.DirEntry, h.ColumnCount)
	entrySize := h.SizeClass.EntrySize()
	for i := range entries {
		if offset+entrySize > len(data) {
			return nil, fmt.Errorf("%w: directory entry %d runs past end of blob", errs.ErrTruncatedBlob, i)
		}

		e, err := section.ParseDirEntry(data[offset:], h.SizeClass)
		if err != nil {
			return nil, err
		}

		if !e.Type.Valid() {
			if e.Type == format.TypeDecimal {
				return nil, fmt.Errorf("%w: column %d is DECIMAL", errs.ErrDecimalNotSupported, i)
			}

			return nil, fmt.Errorf("%w: column %d has type code %d", errs.ErrUnknownTypeCode, i, e.Type)
		}

		entries[i] = e
		offset += entrySize
	}

	namesStart := offset
	namesEnd := namesStart + int(h.NamesLength)
	if namesEnd > len(data) {
		return nil, fmt.Errorf("%w: name region runs past end of blob", errs.ErrInvalidOffsets)
	}

	names := data[namesStart:namesEnd]
	dataRegion := data[namesEnd:]

	extents := make([]extent, len(entries))
	for i, e := range entries {
		nameEnd := h.NamesLength
		if i+1 < len(entries) {
			nameEnd = entries[i+1].NameOffset
		}

		if e.NameOffset > nameEnd || int(nameEnd) > len(names) {
			return nil, fmt.Errorf("%w: name offsets inconsistent at column %d", errs.ErrInvalidOffsets, i)
		}

		dataEnd := uint32(len(dataRegion))
		if i+1 < len(entries) {
			dataEnd = entries[i+1].DataOffset
		}

		if e.DataOffset > dataEnd || int(dataEnd) > len(dataRegion) {
			return nil, fmt.Errorf("%w: data offsets inconsistent at column %d", errs.ErrInvalidOffsets, i)
		}

		extents[i] = extent{
			name:    string(names[e.NameOffset:nameEnd]),
			payload: dataRegion[e.DataOffset:dataEnd],
			typ:     e.Type,
		}
	}

	for i := 1; i < len(extents); i++ {
		if !columnLess(extents[i-1].name, extents[i].name) {
			return nil, fmt.Errorf("%w: column %d out of order", errs.ErrInvalidDirectoryOrder, i)
		}
	}

	m := make(Map, len(extents))
	for _, ext := range extents {
		v, err := decodeValue(ext.typ, ext.payload)
		if err != nil {
			return nil, err
		}

		m[ext.name] = v
	}

	return m, nil
}

func decodeValue(typ format.ValueType, payload []byte) (any, error) {
	switch typ {
	case format.TypeInt:
		return encoding.DecodeInt(payload)
	case format.TypeUint:
		return encoding.DecodeUint(payload)
	case format.TypeDouble:
		return encoding.DecodeDouble(payload)
	case format.TypeString:
		return encoding.DecodeString(payload)
	case format.TypeDate:
		return encoding.DecodeDate(payload)
	case format.TypeTime:
		return encoding.DecodeClock(payload)
	case format.TypeDatetime:
		return encoding.DecodeDateTime(payload)
	case format.TypeDyncol:
		return Unpack(payload)
	case format.TypeDecimal:
		return nil, errs.ErrDecimalNotSupported
	default:
		return nil, fmt.Errorf("%w: type code %d", errs.ErrUnknownTypeCode, typ)
	}
}
