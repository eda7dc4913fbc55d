package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeDateTime_RoundTrip_NoMicros(t *testing.T) {
	dt := DateTime{
		Date:  Date{Year: 2015, Month: 1, Day: 1},
		Clock: Clock{Hour: 13, Minute: 45, Second: 30},
	}
	payload := EncodeDateTime(dt)
	assert.Len(t, payload, 6)

	got, err := DecodeDateTime(payload)
	require.NoError(t, err)
	assert.Equal(t, dt, got)
}

func TestEncodeDecodeDateTime_RoundTrip_WithMicros(t *testing.T) {
	dt := DateTime{
		Date:  Date{Year: 2024, Month: 6, Day: 15},
		Clock: Clock{Hour: 8, Minute: 1, Second: 2, Microsecond: 500000},
	}
	payload := EncodeDateTime(dt)
	assert.Len(t, payload, 9)

	got, err := DecodeDateTime(payload)
	require.NoError(t, err)
	assert.Equal(t, dt, got)
}

func TestDecodeDateTime_WrongLength(t *testing.T) {
	_, err := DecodeDateTime([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}
