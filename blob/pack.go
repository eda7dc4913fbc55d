// Package blob assembles and parses complete dyncol blobs: sorting
// columns into canonical order, dispatching each value to its payload
// codec in package encoding, and writing/reading the header and
// directory from package section.
package blob

import (
	"fmt"
	"math"
	"sort"

	"github.com/adamchainz/mariadb-dyncol/encoding"
	"github.com/adamchainz/mariadb-dyncol/errs"
	"github.com/adamchainz/mariadb-dyncol/format"
	"github.com/adamchainz/mariadb-dyncol/section"
)

// Map is the in-memory representation of a dyncol mapping.
type Map = map[string]any

type column struct {
	name    string
	typ     format.ValueType
	payload []byte
}

// Pack serializes m into its on-wire dyncol byte representation. A nil
// value for a key is treated as "key absent" and dropped, per the
// format's null convention.
func Pack(m Map) ([]byte, error) {
	columns := make([]column, 0, len(m))
	var totalNameLen int

	for name, v := range m {
		if v == nil {
			continue
		}

		nameLen := len(name)
		if nameLen > format.MaxNameLength {
			return nil, fmt.Errorf("%w: key %q is %d bytes", errs.ErrNameTooLong, name, nameLen)
		}

		totalNameLen += nameLen
		if totalNameLen > format.MaxTotalNameLength {
			return nil, fmt.Errorf("%w: total key length exceeds %d", errs.ErrTotalNameTooLong, format.MaxTotalNameLength)
		}

		typ, payload, err := encodeValue(v)
		if err != nil {
			return nil, err
		}

		columns = append(columns, column{name: name, typ: typ, payload: payload})
	}

	sort.Slice(columns, func(i, j int) bool {
		return columnLess(columns[i].name, columns[j].name)
	})

	return assemble(columns)
}

// columnLess orders by (UTF-8 byte length, UTF-8 bytes lexicographic) —
// the canonical order MariaDB's own COLUMN_CREATE produces.
func columnLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

func encodeValue(v any) (format.ValueType, []byte, error) {
	switch val := v.(type) {
	case int:
		return encodeSigned(int64(val))
	case int8:
		return encodeSigned(int64(val))
	case int16:
		return encodeSigned(int64(val))
	case int32:
		return encodeSigned(int64(val))
	case int64:
		return encodeSigned(val)
	case uint:
		return encodeUnsigned(uint64(val))
	case uint8:
		return encodeUnsigned(uint64(val))
	case uint16:
		return encodeUnsigned(uint64(val))
	case uint32:
		return encodeUnsigned(uint64(val))
	case uint64:
		return encodeUnsigned(val)
	case float32:
		return encodeFloat(float64(val))
	case float64:
		return encodeFloat(val)
	case string:
		return format.TypeString, encoding.EncodeString(val), nil
	case encoding.Date:
		return format.TypeDate, encoding.EncodeDate(val), nil
	case encoding.Clock:
		return format.TypeTime, encoding.EncodeClock(val), nil
	case encoding.DateTime:
		return format.TypeDatetime, encoding.EncodeDateTime(val), nil
	case map[string]any:
		return encodeNested(val)
	default:
		return 0, nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedGoType, v)
	}
}

func encodeSigned(v int64) (format.ValueType, []byte, error) {
	payload, err := encoding.EncodeInt(v)
	if err != nil {
		return 0, nil, err
	}

	return format.TypeInt, payload, nil
}

// encodeUnsigned routes a non-negative Go unsigned value to INT when it
// fits the signed payload (matching what COLUMN_CREATE emits for small
// unsigned inputs) and to UINT only once it exceeds math.MaxInt64.
func encodeUnsigned(v uint64) (format.ValueType, []byte, error) {
	if v <= math.MaxInt64 {
		return encodeSigned(int64(v))
	}

	return format.TypeUint, encoding.EncodeUint(v), nil
}

func encodeFloat(v float64) (format.ValueType, []byte, error) {
	payload, err := encoding.EncodeDouble(v)
	if err != nil {
		return 0, nil, err
	}

	return format.TypeDouble, payload, nil
}

func encodeNested(m map[string]any) (format.ValueType, []byte, error) {
	payload, err := Pack(m)
	if err != nil {
		return 0, nil, err
	}

	return format.TypeDyncol, payload, nil
}

// assemble chooses the directory size class from the total payload
// size, then writes the header, directory, names, and data regions into
// three exactly-sized slices before concatenating them into the final
// blob. Every region's size is known up front, so there is nothing for
// a growable buffer pool to amortize here.
func assemble(columns []column) ([]byte, error) {
	if len(columns) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d columns", errs.ErrTooManyColumns, len(columns))
	}

	var totalDataLen int64
	var totalNameLen int
	for _, c := range columns {
		totalDataLen += int64(len(c.payload))
		totalNameLen += len(c.name)
	}

	sc, ok := format.ChooseSizeClass(totalDataLen)
	if !ok {
		return nil, fmt.Errorf("%w: total payload size %d", errs.ErrDataTooLarge, totalDataLen)
	}

	dir := make([]byte, 0, len(columns)*sc.EntrySize())
	names := make([]byte, 0, totalNameLen)
	data := make([]byte, 0, totalDataLen)

	var nameOffset uint16
	var dataOffset uint32
	for _, c := range columns {
		entry := section.DirEntry{NameOffset: nameOffset, DataOffset: dataOffset, Type: c.typ}
		dir = append(dir, entry.Bytes(sc)...)
		names = append(names, c.name...)
		data = append(data, c.payload...)

		nameOffset += uint16(len(c.name))
		dataOffset += uint32(len(c.payload))
	}

	h := section.Header{SizeClass: sc, ColumnCount: uint16(len(columns)), NamesLength: uint16(totalNameLen)}

	out := make([]byte, 0, section.HeaderSize+len(dir)+len(names)+len(data))
	out = append(out, h.Bytes()...)
	out = append(out, dir...)
	out = append(out, names...)
	out = append(out, data...)

	return out, nil
}
