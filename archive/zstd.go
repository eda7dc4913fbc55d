package archive

// ZstdCompressor compresses archived blobs with Zstandard. It gives the
// best compression ratio of the supported algorithms, at the cost of
// more CPU time than S2 or LZ4 — a reasonable tradeoff for blobs that
// are written once and read rarely, such as cold-storage archives.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
