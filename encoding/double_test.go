package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDouble_RoundTrip(t *testing.T) {
	values := []float64{0, 1.0, -1.0, 3.14159, -123456.789}
	for _, v := range values {
		payload, err := EncodeDouble(v)
		require.NoError(t, err)
		assert.Len(t, payload, 8)

		got, err := DecodeDouble(payload)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEncodeDouble_OneIsCanonicalBytes(t *testing.T) {
	payload, err := EncodeDouble(1.0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f}, payload)
}

func TestEncodeDouble_NegativeZeroNormalizes(t *testing.T) {
	payload, err := EncodeDouble(math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), payload)
}

func TestEncodeDouble_RejectsNaNAndInf(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := EncodeDouble(v)
		assert.Error(t, err)
	}
}

func TestDecodeDouble_WrongLength(t *testing.T) {
	_, err := DecodeDouble([]byte{0x00})
	assert.Error(t, err)
}
