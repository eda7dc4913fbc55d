package archive

import (
	"fmt"

	"github.com/adamchainz/mariadb-dyncol/format"
)

// Compressor compresses a complete packed dyncol blob.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory returning the Codec for the given algorithm.
func CreateCodec(algorithm format.CompressionType) (Codec, error) {
	switch algorithm {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("archive: unknown compression algorithm %s", algorithm)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given algorithm.
func GetCodec(algorithm format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[algorithm]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("archive: unsupported compression algorithm: %s", algorithm)
}

// Options configures Compress.
type Options struct {
	algorithm format.CompressionType
}

// Option configures Options.
type Option func(*Options)

// WithAlgorithm selects the compression algorithm used by Compress.
// The default, if no option is given, is format.CompressionZstd.
func WithAlgorithm(algorithm format.CompressionType) Option {
	return func(o *Options) {
		o.algorithm = algorithm
	}
}

// Compress wraps a packed dyncol blob with a 1-byte algorithm tag
// followed by the compressed payload.
func Compress(data []byte, opts ...Option) ([]byte, error) {
	o := Options{algorithm: format.CompressionZstd}
	for _, opt := range opts {
		opt(&o)
	}

	codec, err := CreateCodec(o.algorithm)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("archive: compress with %s: %w", o.algorithm, err)
	}

	out := make([]byte, 1+len(compressed))
	out[0] = byte(o.algorithm)
	copy(out[1:], compressed)

	return out, nil
}

// Decompress reverses Compress, returning the original packed dyncol
// blob bytes.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("archive: empty archived blob")
	}

	algorithm := format.CompressionType(data[0])

	codec, err := CreateCodec(algorithm)
	if err != nil {
		return nil, err
	}

	original, err := codec.Decompress(data[1:])
	if err != nil {
		return nil, fmt.Errorf("archive: decompress with %s: %w", algorithm, err)
	}

	return original, nil
}
