package compress

// ZstdCompressor implements Zstandard compression. It offers the best
// compression ratio of the supported algorithms and is the right default when
// armored output size matters more than encoding speed.
//
// Two backends exist behind the same type: valyala/gozstd (the reference C
// implementation) on cgo builds, and klauspost/compress/zstd (pure Go)
// otherwise. The produced frames are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
