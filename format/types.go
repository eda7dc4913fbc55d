// Package format defines the wire-level constants shared by the dyncol
// codec: value type codes, charset bytes, the variable-width directory
// size classes, and the archive package's compression algorithm codes.
package format

// ValueType is the 4-bit type code stored in each column directory entry.
type ValueType uint8

const (
	TypeInt      ValueType = 0 // TypeInt represents a signed integer column.
	TypeUint     ValueType = 1 // TypeUint represents an unsigned integer column (used only when a value overflows signed 64-bit).
	TypeDouble   ValueType = 2 // TypeDouble represents an IEEE-754 double column.
	TypeString   ValueType = 3 // TypeString represents a UTF-8 string column.
	TypeDecimal  ValueType = 4 // TypeDecimal is reserved; both pack and unpack refuse it.
	TypeDatetime ValueType = 5 // TypeDatetime represents a combined date-and-time column.
	TypeDate     ValueType = 6 // TypeDate represents a calendar date column.
	TypeTime     ValueType = 7 // TypeTime represents a wall-clock time column.
	TypeDyncol   ValueType = 8 // TypeDyncol represents a nested named mapping column.
)

func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "Int"
	case TypeUint:
		return "Uint"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeDecimal:
		return "Decimal"
	case TypeDatetime:
		return "Datetime"
	case TypeDate:
		return "Date"
	case TypeTime:
		return "Time"
	case TypeDyncol:
		return "Dyncol"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the type codes recognized by the
// directory decoder (0-3, 5-8). TypeDecimal (4) is intentionally
// excluded: it is a recognized-but-unsupported code, not an unknown one.
func (t ValueType) Valid() bool {
	switch t {
	case TypeInt, TypeUint, TypeDouble, TypeString, TypeDatetime, TypeDate, TypeTime, TypeDyncol:
		return true
	default:
		return false
	}
}

// Charset is the charset byte prefixing a STRING payload.
type Charset uint8

const (
	CharsetUTF8    Charset = 0x21 // CharsetUTF8 is MySQL's "utf8" charset id.
	CharsetUTF8MB4 Charset = 0x2D // CharsetUTF8MB4 is MySQL's "utf8mb4" charset id, always used when packing.
)

func (c Charset) String() string {
	switch c {
	case CharsetUTF8:
		return "utf8"
	case CharsetUTF8MB4:
		return "utf8mb4"
	default:
		return "unknown"
	}
}

// Supported reports whether c is a charset byte unpack accepts.
func (c Charset) Supported() bool {
	return c == CharsetUTF8 || c == CharsetUTF8MB4
}

// Limits on key names, per spec.
const (
	// MaxNameLength is the maximum UTF-8 byte length of a single key.
	MaxNameLength = 16383
	// MaxTotalNameLength is the maximum sum of UTF-8 byte lengths of all keys in one blob.
	MaxTotalNameLength = 65535
)

// Header flags byte layout: the low two bits are the size class (see
// SizeClasses below), bit 2 marks the named-dynamic-columns format.
const (
	FormatFlagMask = 0xFC
	FormatFlagTag  = 0x04
	SizeClassMask  = 0x03
)

// SizeClass describes one of the three variable-width column directory
// layouts. The encoder picks the narrowest class whose MaxDataLen is
// strictly greater than the total data payload length.
type SizeClass struct {
	// Class is the 2-bit value stored in the low bits of the header flags byte.
	Class uint8
	// CombinedWidth is the byte width of the per-entry (data-offset, type) field.
	CombinedWidth int
	// OffsetBits is the number of bits of the combined field, above the 4-bit type code, devoted to the data offset.
	OffsetBits uint
	// MaxDataLen is the exclusive upper bound on total data payload length representable by this class.
	MaxDataLen int64
}

// EntrySize returns the total byte size of one directory entry for this
// class: a 2-byte name offset plus the combined field.
func (s SizeClass) EntrySize() int {
	return 2 + s.CombinedWidth
}

// sizeClasses is indexed by the 2-bit size class value.
var sizeClasses = [3]SizeClass{
	{Class: 0, CombinedWidth: 2, OffsetBits: 12, MaxDataLen: 1 << 12},
	{Class: 1, CombinedWidth: 3, OffsetBits: 20, MaxDataLen: 1 << 20},
	{Class: 2, CombinedWidth: 4, OffsetBits: 28, MaxDataLen: 1 << 28},
}

// SizeClassByIndex returns the size class for a 2-bit class value (0-2).
// ok is false for any other value.
func SizeClassByIndex(class uint8) (sc SizeClass, ok bool) {
	if class > 2 {
		return SizeClass{}, false
	}

	return sizeClasses[class], true
}

// ChooseSizeClass picks the narrowest class that can hold totalDataLen
// bytes of payload. ok is false if totalDataLen exceeds class 2's range.
func ChooseSizeClass(totalDataLen int64) (sc SizeClass, ok bool) {
	for _, c := range sizeClasses {
		if totalDataLen < c.MaxDataLen {
			return c, true
		}
	}

	return SizeClass{}, false
}

// CompressionType identifies the algorithm used by the archive package to
// compress an already-packed dyncol blob for cold storage or transport.
// It has no bearing on the dyncol wire format itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the blob unmodified.
	CompressionZstd CompressionType = 0x2 // CompressionZstd compresses with Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 compresses with S2 (a Snappy extension).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 compresses with LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
