package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamchainz/mariadb-dyncol/errs"
)

func TestEncodeInt(t *testing.T) {
	tests := []struct {
		name    string
		v       int64
		payload []byte
	}{
		{"zero", 0, []byte{}},
		{"one", 1, []byte{0x02}},
		{"minus one", -1, []byte{0x01}},
		{"128", 128, []byte{0x00, 0x01}},
		{"123", 123, []byte{0xf6}},
		{"min", MinInt, nil}, // just must not error; checked separately
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeInt(tt.v)
			require.NoError(t, err)
			if tt.payload != nil {
				assert.Equal(t, tt.payload, got)
			}
		})
	}
}

func TestEncodeInt_OutOfRange(t *testing.T) {
	_, err := EncodeInt(MinInt - 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValue))
}

func TestDecodeInt_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 128, -128, 123, -123, MinInt, 1 << 62, -(1 << 31)}
	for _, v := range values {
		payload, err := EncodeInt(v)
		require.NoError(t, err)

		got, err := DecodeInt(payload)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecodeInt_EmptyPayloadIsZero(t *testing.T) {
	got, err := DecodeInt(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}
