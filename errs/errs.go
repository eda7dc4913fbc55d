// Package errs defines the dyncol error taxonomy: four category
// sentinels and the leaf errors that wrap them. Callers discriminate
// failures with errors.Is against the category sentinel, e.g.:
//
//	if errors.Is(err, errs.ErrLimit) { ... }
package errs

import "errors"

// Category sentinels. Every error returned by Pack/Unpack wraps exactly
// one of these.
var (
	// ErrType is returned when a value's runtime type is not one of the
	// supported value classes.
	ErrType = errors.New("dyncol: unsupported value type")

	// ErrValue is returned when a value is syntactically the right kind
	// but out of the representable range, or the blob itself carries an
	// unrecognized format marker or type code.
	ErrValue = errors.New("dyncol: invalid value")

	// ErrLimit is returned when a key name or the sum of key names
	// exceeds its length cap.
	ErrLimit = errors.New("dyncol: limit exceeded")

	// ErrNotSupported is returned for features that are recognized but
	// deliberately unimplemented: DECIMAL, and charsets other than
	// utf8/utf8mb4.
	ErrNotSupported = errors.New("dyncol: not supported")
)

// Leaf errors, each wrapping exactly one category sentinel above.
var (
	// ErrUnsupportedGoType: a Go value passed to Pack isn't one of the
	// supported kinds (int family, uint family, float, string, Date,
	// Clock, DateTime, Map, or nil).
	ErrUnsupportedGoType = wrap(ErrType, "unsupported Go value type")

	// ErrIntegerOutOfRange: an integer value falls outside
	// [-(2**32-1), 2**64-1].
	ErrIntegerOutOfRange = wrap(ErrValue, "integer out of representable range")

	// ErrFloatNotFinite: a float64 value is NaN or +/-Inf.
	ErrFloatNotFinite = wrap(ErrValue, "float value is NaN or infinite")

	// ErrUnknownFormatFlags: the header's flags byte has bits set outside
	// the recognized named-dynamic-columns marker and size class.
	ErrUnknownFormatFlags = wrap(ErrValue, "unrecognized format flags")

	// ErrUnknownTypeCode: a directory entry's type code is outside
	// {0,1,2,3,5,6,7,8}.
	ErrUnknownTypeCode = wrap(ErrValue, "unrecognized column type code")

	// ErrTruncatedBlob: the buffer ends before a fixed-size field (header,
	// directory entry, or fixed-length payload) can be fully read.
	ErrTruncatedBlob = wrap(ErrValue, "blob is truncated")

	// ErrInvalidDirectoryOrder: directory entries are not in strictly
	// ascending (name length, name bytes) order.
	ErrInvalidDirectoryOrder = wrap(ErrValue, "directory entries are not canonically ordered")

	// ErrInvalidOffsets: name or data offsets are not monotonically
	// non-decreasing, or run past the end of their region.
	ErrInvalidOffsets = wrap(ErrValue, "directory offsets are inconsistent")

	// ErrNameTooLong: a single key's UTF-8 length exceeds MaxNameLength.
	ErrNameTooLong = wrap(ErrLimit, "key name exceeds maximum length")

	// ErrTotalNameTooLong: the sum of all key UTF-8 lengths exceeds
	// MaxTotalNameLength.
	ErrTotalNameTooLong = wrap(ErrLimit, "total key name length exceeds maximum")

	// ErrDataTooLarge: the total data payload exceeds the largest size
	// class's representable range.
	ErrDataTooLarge = wrap(ErrLimit, "total data payload exceeds maximum representable size")

	// ErrTooManyColumns: the column count exceeds what a uint16 can hold.
	ErrTooManyColumns = wrap(ErrLimit, "column count exceeds maximum")

	// ErrDecimalNotSupported: DECIMAL was requested on encode or seen on
	// decode. The type code is reserved, not merely unknown.
	ErrDecimalNotSupported = wrap(ErrNotSupported, "DECIMAL type is not supported")

	// ErrUnsupportedCharset: a STRING payload's charset byte is neither
	// utf8 (0x21) nor utf8mb4 (0x2D).
	ErrUnsupportedCharset = wrap(ErrNotSupported, "unsupported charset")
)

func wrap(category error, msg string) error {
	return &leafError{category: category, msg: msg}
}

// leafError pairs a human-readable message with its category sentinel,
// so errors.Is(leaf, category) succeeds without needing fmt.Errorf's
// "%w" machinery for the static (no-argument) leaf errors themselves.
// Call sites that need to embed dynamic detail wrap these further with
// fmt.Errorf("%w: detail", errs.ErrXxx, detail).
type leafError struct {
	category error
	msg      string
}

func (e *leafError) Error() string { return e.category.Error() + ": " + e.msg }
func (e *leafError) Unwrap() error { return e.category }
