package archive

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4Compressor compresses archived blobs with LZ4, trading compression
// ratio for the fastest decompression of the supported algorithms.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block, prefixed with its
// original length. The LZ4 block format itself carries no size header,
// and a packed dyncol blob already knows its own length, so Decompress
// can allocate the exact destination size in one shot instead of
// guessing and retrying.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var lc lz4.Compressor

	dst := make([]byte, 4+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst, uint32(len(data)))

	n, err := lc.CompressBlock(data, dst[4:])
	if err != nil {
		return nil, err
	}

	return dst[:4+n], nil
}

// Decompress reverses Compress, reading the original length from the
// 4-byte prefix so the destination buffer is allocated exactly once.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if len(data) < 4 {
		return nil, fmt.Errorf("archive: lz4 payload shorter than its length prefix")
	}

	size := binary.LittleEndian.Uint32(data)
	dst := make([]byte, size)

	n, err := lz4.UncompressBlock(data[4:], dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
