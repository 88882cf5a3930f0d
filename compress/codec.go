// Package compress provides the compression codecs used by the armor format.
//
// Binary-to-text encoding inflates data by 8/n for an n-bit alphabet, so
// compressing the payload first often pays for itself. The base-N codec
// itself knows nothing about compression; this package is consumed by the
// armor package, which compresses plaintext before rendering it.
//
// Four algorithms are supported:
//   - None: pass-through (incompressible or already-compressed payloads)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
package compress

import "fmt"

// Type identifies a compression algorithm. The value doubles as the armor
// compression tag, so existing values must never be renumbered.
type Type uint8

const (
	None Type = 0x1 // None represents no compression.
	Zstd Type = 0x2 // Zstd represents Zstandard compression.
	S2   Type = 0x3 // S2 represents S2 compression.
	LZ4  Type = 0x4 // LZ4 represents LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a fully materialized payload.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result owned by
	// the caller. The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers a payload previously produced by the matching
// Compressor. Implementations validate the input format and return an error
// on corrupted or foreign data.
type Decompressor interface {
	// Decompress decompresses data and returns a newly allocated result owned
	// by the caller. The input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
