package blob

import (
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamchainz/mariadb-dyncol/encoding"
	"github.com/adamchainz/mariadb-dyncol/errs"
)

func TestPack_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		in   Map
		hex  string
	}{
		{"empty", Map{}, "0400000000"},
		{"a=1", Map{"a": 1}, "0401000100000000006102"},
		{"a=-1", Map{"a": -1}, "0401000100000000006101"},
		{"a=0", Map{"a": 0}, "04010001000000000061"},
		{"a=1,b=2", Map{"a": 1, "b": 2}, "0402000200000000000100100061620204"},
		{"abc=123", Map{"abc": 123}, "040100030000000000616263f6"},
		{"a=string", Map{"a": "string"}, "040100010000000300612d737472696e67"},
		{"a={b:c}", Map{"a": Map{"b": "c"}}, "04010001000000080061040100010000000300622d63"},
		{"a=date", Map{"a": encoding.Date{Year: 2015, Month: 1, Day: 1}}, "0401000100000006006121be0f"},
		{"a=1.0", Map{"a": 1.0}, "04010001000000020061000000000000f03f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, hex.EncodeToString(got))

			want, err := hex.DecodeString(tt.hex)
			require.NoError(t, err)

			unpacked, err := Unpack(want)
			require.NoError(t, err)
			assert.Equal(t, normalizeInts(tt.in), normalizeInts(unpacked))
		})
	}
}

// normalizeInts maps the Go-literal ints used in test fixtures to the
// int64 Unpack always returns, so fixture maps compare equal to
// round-tripped results.
func normalizeInts(m Map) Map {
	out := make(Map, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case int:
			out[k] = int64(val)
		case Map:
			out[k] = normalizeInts(val)
		default:
			out[k] = v
		}
	}

	return out
}

func TestRoundTrip_DropsNulls(t *testing.T) {
	in := Map{"a": 1, "b": nil}
	packed, err := Pack(in)
	require.NoError(t, err)

	got, err := Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, Map{"a": int64(1)}, got)
}

func TestPack_Deterministic(t *testing.T) {
	m1 := Map{"a": 1, "b": "x", "longer": 2.5}
	m2 := Map{"longer": 2.5, "b": "x", "a": 1}

	p1, err := Pack(m1)
	require.NoError(t, err)
	p2, err := Pack(m2)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestPack_OrderingObservableInNamesRegion(t *testing.T) {
	packed, err := Pack(Map{"bb": 1, "a": 2, "ccc": 3})
	require.NoError(t, err)

	got, err := Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, Map{"bb": int64(1), "a": int64(2), "ccc": int64(3)}, got)

	// names region is "a" (1) + "bb" (2) + "ccc" (3), in (len, bytes) order.
	hexStr := hex.EncodeToString(packed)
	assert.Contains(t, hexStr, hex.EncodeToString([]byte("abbccc")))
}

func TestPack_NameLengthLimits(t *testing.T) {
	maxName := strings.Repeat("a", 16383)
	_, err := Pack(Map{maxName: 1})
	require.NoError(t, err)

	tooLong := strings.Repeat("a", 16384)
	_, err = Pack(Map{tooLong: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLimit))
}

func TestPack_TotalNameLengthLimit(t *testing.T) {
	m := Map{}
	// Five names each at the per-name cap, together over the total cap.
	m[strings.Repeat("a", 16383)] = 1
	m[strings.Repeat("b", 16383)] = 2
	m[strings.Repeat("c", 16383)] = 3
	m[strings.Repeat("d", 16383)] = 4
	m[strings.Repeat("e", 16383)] = 5

	_, err := Pack(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLimit))
}

func TestPack_IntegerBoundaries(t *testing.T) {
	packed, err := Pack(Map{"a": 0})
	require.NoError(t, err)
	got, err := Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got["a"])

	packed, err = Pack(Map{"a": 128})
	require.NoError(t, err)
	// header(5) + directory(4) + name(1) + payload(2) = 12
	assert.Len(t, packed, 12)

	packed, err = Pack(Map{"a": uint64(18446744073709551615)}) // 2**64 - 1
	require.NoError(t, err)
	got, err = Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), got["a"])

	_, err = Pack(Map{"a": int64(-(1 << 32))}) // -(2**32), out of range
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValue))
}

func TestUnpack_RejectsNumberedColumnsFormat(t *testing.T) {
	data, err := hex.DecodeString("0001000100030861666166")
	require.NoError(t, err)

	_, err = Unpack(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValue))
}

func TestUnpack_RejectsUnknownFormatFlags(t *testing.T) {
	_, err := Unpack([]byte{0xF8, 0x00, 0x00, 0x00, 0x00})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValue))
}

func TestDecodeString_CharsetAcceptance(t *testing.T) {
	s, err := encoding.DecodeString([]byte{0x21, 'h', 'i'})
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	_, err = encoding.DecodeString([]byte{0x08, 'h', 'i'})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotSupported))
}

func TestPack_NegativeZeroNormalizes(t *testing.T) {
	negZero := math.Copysign(0, -1)
	packed, err := Pack(Map{"0": negZero})
	require.NoError(t, err)

	// last 8 bytes (the DOUBLE payload) must be all zero.
	tail := packed[len(packed)-8:]
	assert.Equal(t, make([]byte, 8), tail)
}

func TestPack_UnsupportedType(t *testing.T) {
	_, err := Pack(Map{"a": []int{1, 2, 3}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrType))
}

func TestPack_RejectsOutOfRangeInt(t *testing.T) {
	_, err := Pack(Map{"a": uint64(1) << 63})
	require.NoError(t, err) // exactly 2**63 fits UINT path, not an error

	_, err = Pack(Map{"a": int64(-(1 << 32)) - 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValue))
}
