package dyncol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamchainz/mariadb-dyncol/archive"
	"github.com/adamchainz/mariadb-dyncol/format"
)

func TestPackUnpack_RoundTripWithCalendarTypes(t *testing.T) {
	in := Map{
		"created": Date{Year: 2024, Month: 3, Day: 5},
		"opens":   Clock{Hour: 9, Minute: 0, Second: 0},
		"logged":  DateTime{Date: Date{Year: 2024, Month: 3, Day: 5}, Clock: Clock{Hour: 9, Minute: 0, Second: 0, Microsecond: 1}},
	}

	packed, err := Pack(in)
	require.NoError(t, err)

	got, err := Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestFingerprint_StableAcrossEqualBlobs(t *testing.T) {
	p1, err := Pack(Map{"a": 1, "b": "x"})
	require.NoError(t, err)
	p2, err := Pack(Map{"b": "x", "a": 1})
	require.NoError(t, err)

	assert.Equal(t, Fingerprint(p1), Fingerprint(p2))
}

func TestArchiveRoundTrip(t *testing.T) {
	packed, err := Pack(Map{"a": 1, "b": "hello"})
	require.NoError(t, err)

	archived, err := archive.Compress(packed, archive.WithAlgorithm(format.CompressionLZ4))
	require.NoError(t, err)

	restored, err := archive.Decompress(archived)
	require.NoError(t, err)
	assert.Equal(t, packed, restored)

	got, err := Unpack(restored)
	require.NoError(t, err)
	assert.Equal(t, Map{"a": int64(1), "b": "hello"}, got)
}
