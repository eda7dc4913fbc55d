// Package archive provides optional post-pack compression for dyncol
// blobs moved to cold storage or transport.
//
// A packed dyncol blob from blob.Pack is immutable and self-contained,
// which makes it a natural unit to compress. This package never touches
// the dyncol wire format: it wraps a complete packed blob with a small
// envelope (a 1-byte algorithm tag followed by the compressed payload)
// and reverses that wrapping before the caller hands the bytes back to
// blob.Unpack.
//
// # Algorithms
//
//	None: no compression, envelope overhead only (format.CompressionNone)
//	Zstd: best ratio, moderate speed (format.CompressionZstd)
//	S2:   balanced ratio and speed (format.CompressionS2)
//	LZ4:  fastest decompression (format.CompressionLZ4)
//
// # Usage
//
//	packed, _ := blob.Pack(m)
//	archived, _ := archive.Compress(packed, archive.WithAlgorithm(format.CompressionZstd))
//	// ... store archived ...
//	packed2, _ := archive.Decompress(archived)
//	m2, _ := blob.Unpack(packed2)
package archive
