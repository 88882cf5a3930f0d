// Package armor renders binary payloads as self-contained, integrity-checked
// text, composing the basen codec with optional compression.
//
// An armored message is the base-N rendering of a small binary frame:
//
//	+-----+----------------------+---------------------+
//	| tag | xxHash64 (8B, BE)    | compressed payload  |
//	+-----+----------------------+---------------------+
//
// The tag byte names the compression algorithm (compress.Type), and the
// checksum covers the plaintext, so corruption introduced anywhere between
// Armor and Dearmor is detected after decompression. The basen core has no
// knowledge of this framing; armor is strictly a consumer of it.
package armor

import (
	"fmt"

	"github.com/arloliu/basen"
	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/compress"
	"github.com/arloliu/basen/endian"
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/hash"
	"github.com/arloliu/basen/internal/options"
	"github.com/arloliu/basen/internal/pool"
)

// frameOverhead is the compression tag plus the plaintext checksum.
const frameOverhead = 1 + 8

// engine is the byte order of the embedded checksum. Network order, as usual
// for on-the-wire framing.
var engine = endian.GetBigEndianEngine()

// Armorer armors and dearmors payloads with a fixed alphabet, compression
// algorithm, and padding policy. Instances are immutable after New and safe
// for concurrent use.
type Armorer struct {
	alphabet    alphabet.ID
	compression compress.Type
	pad         bool
}

// Option configures an Armorer.
type Option = options.Option[*Armorer]

// WithAlphabet selects the alphabet armored output is rendered in.
// The default is Base64.
func WithAlphabet(id alphabet.ID) Option {
	return options.New(func(ar *Armorer) error {
		if _, err := alphabet.Get(id); err != nil {
			return err
		}
		ar.alphabet = id

		return nil
	})
}

// WithCompression selects the payload compression algorithm.
// The default is Zstd.
func WithCompression(t compress.Type) Option {
	return options.New(func(ar *Armorer) error {
		if _, err := compress.GetCodec(t); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrUnknownCompression, t)
		}
		ar.compression = t

		return nil
	})
}

// WithPadding controls trailing padding of the rendered text.
// Padding is enabled by default.
func WithPadding(pad bool) Option {
	return options.NoError(func(ar *Armorer) {
		ar.pad = pad
	})
}

// New creates an Armorer with the given options applied over the defaults
// (Base64, Zstd, padded).
func New(opts ...Option) (*Armorer, error) {
	ar := &Armorer{
		alphabet:    alphabet.Base64,
		compression: compress.Zstd,
		pad:         true,
	}
	if err := options.Apply(ar, opts...); err != nil {
		return nil, err
	}

	return ar, nil
}

// Armor compresses data, frames it with its checksum, and renders the frame
// in the configured alphabet.
func (ar *Armorer) Armor(data []byte) (string, error) {
	codec, err := compress.GetCodec(ar.compression)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrUnknownCompression, ar.compression)
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return "", fmt.Errorf("armor compression failed: %w", err)
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.Grow(frameOverhead + len(compressed))
	buf.WriteByte(byte(ar.compression))
	buf.B = engine.AppendUint64(buf.B, hash.Sum64(data))
	buf.MustWrite(compressed)

	return basen.Encode(buf.Bytes(), ar.alphabet, ar.pad)
}

// Dearmor decodes an armored message, decompresses it, and verifies the
// embedded checksum against the recovered plaintext.
//
// The frame tag takes precedence over the Armorer's configured compression,
// so an Armorer can dearmor messages produced with any supported algorithm.
func (ar *Armorer) Dearmor(text string) ([]byte, error) {
	frame, err := basen.Decode(text, ar.alphabet)
	if err != nil {
		return nil, err
	}
	if len(frame) < frameOverhead {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrArmorTooShort, len(frame))
	}

	codec, err := compress.GetCodec(compress.Type(frame[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: tag 0x%02x", errs.ErrUnknownCompression, frame[0])
	}
	sum := engine.Uint64(frame[1:frameOverhead])

	data, err := codec.Decompress(frame[frameOverhead:])
	if err != nil {
		return nil, fmt.Errorf("armor decompression failed: %w", err)
	}
	if hash.Sum64(data) != sum {
		return nil, errs.ErrChecksumMismatch
	}

	return data, nil
}
