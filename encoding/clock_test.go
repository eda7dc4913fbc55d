package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeClock_ThreeByteWhenNoMicros(t *testing.T) {
	payload := EncodeClock(Clock{Hour: 13, Minute: 45, Second: 30})
	assert.Len(t, payload, 3)

	got, err := DecodeClock(payload)
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 13, Minute: 45, Second: 30}, got)
}

func TestEncodeClock_SixByteWithMicros(t *testing.T) {
	c := Clock{Hour: 23, Minute: 59, Second: 59, Microsecond: 999999}
	payload := EncodeClock(c)
	assert.Len(t, payload, 6)

	got, err := DecodeClock(payload)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestDecodeClock_WrongLength(t *testing.T) {
	_, err := DecodeClock([]byte{0x01, 0x02})
	assert.Error(t, err)
}
