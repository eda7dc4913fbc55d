package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, math.MaxInt64, uint64(math.MaxInt64) + 1, math.MaxUint64}
	for _, v := range values {
		payload := EncodeUint(v)
		assert.Len(t, payload, 8)

		got, err := DecodeUint(payload)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecodeUint_WrongLength(t *testing.T) {
	_, err := DecodeUint([]byte{0x01, 0x02})
	assert.Error(t, err)
}
