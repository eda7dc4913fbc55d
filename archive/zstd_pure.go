package archive

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compress compresses data using Zstandard.
//
// Archive blobs are packed dyncol output compressed one at a time for
// cold storage, not a high-frequency streaming path, so a fresh encoder
// per call is simpler than the teacher's encoder pool and costs nothing
// that matters at this call rate.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("archive: failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("archive: failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
