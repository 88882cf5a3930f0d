// Package basen implements the RFC 4648 family of base-N text encodings
// (base16, base16-upper, base32, base32hex, base64, base64url, and octal)
// through a single bit-regrouping algorithm parameterized by symbol width.
//
// Unlike per-base implementations, basen derives the packing geometry of each
// alphabet from its symbol bit width n: one aligned group spans lcm(8, n)
// bits, i.e. lcm(8,n)/8 bytes carrying lcm(8,n)/n symbols. Encoding chunks
// the input into such groups and regroups bits with a sliding cursor;
// decoding runs the same cursor in reverse.
//
// Decoding is strict. Every byte sequence has exactly one valid rendering per
// alphabet, and any input that is not that rendering is rejected with
// errs.ErrNotCanonicalInput, even when a naive bit-reassembly would succeed.
// This covers non-zero padding bits (RFC 4648 §3.5) and malformed pad runs.
//
// # Basic Usage
//
//	import (
//	    "github.com/arloliu/basen"
//	    "github.com/arloliu/basen/alphabet"
//	)
//
//	text, _ := basen.Encode([]byte("foo"), alphabet.Base64, true) // "Zm9v"
//	data, _ := basen.Decode(text, alphabet.Base64)                // []byte("foo")
//
// All operations are pure functions over immutable input; any number of
// encode/decode calls may run concurrently.
//
// For checksummed and optionally compressed output built on top of this
// codec, see the armor package.
package basen

import (
	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/internal/bitgroup"
	"github.com/arloliu/basen/internal/pool"
)

// Encode renders data in the given alphabet.
//
// When pad is true and the alphabet defines a pad group (base32 and base64
// variants), the output is padded with '=' to a multiple of the group size.
// Base16 variants and octal are never padded.
//
// Parameters:
//   - data: Bytes to encode; may be empty.
//   - id: Alphabet to encode with.
//   - pad: Whether to append trailing padding.
//
// Returns:
//   - string: The canonical rendering of data.
//   - error: errs.ErrUnknownAlphabet if id is not registered.
func Encode(data []byte, id alphabet.ID, pad bool) (string, error) {
	alpha, err := alphabet.Get(id)
	if err != nil {
		return "", err
	}

	group := bitgroup.New(alpha.Width())

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)
	buf.Grow(encodedLen(len(data), alpha))

	for start := 0; start < len(data); start += group.ByteLen {
		end := min(start+group.ByteLen, len(data))

		symbols, err := group.Pack(data[start:end])
		if err != nil {
			return "", err
		}
		for _, v := range symbols {
			c, err := alpha.Char(v)
			if err != nil {
				return "", err
			}
			buf.WriteByte(c)
		}
	}

	if pad {
		appendPadding(buf, alpha.PadGroup())
	}

	return string(buf.Bytes()), nil
}

// Decode recovers the byte sequence rendered as text in the given alphabet.
//
// Both padded and unpadded canonical forms are accepted. Any other input
// fails: characters outside the alphabet with errs.ErrOutOfAlphabetCharacter,
// and bit patterns or pad runs that no byte sequence encodes to with
// errs.ErrNotCanonicalInput.
//
// Parameters:
//   - text: Encoded text; may be empty.
//   - id: Alphabet to decode against.
//
// Returns:
//   - []byte: The decoded bytes.
//   - error: errs.ErrUnknownAlphabet, errs.ErrOutOfAlphabetCharacter, or
//     errs.ErrNotCanonicalInput.
func Decode(text string, id alphabet.ID) ([]byte, error) {
	alpha, err := alphabet.Get(id)
	if err != nil {
		return nil, err
	}

	stripped, err := stripPadding(text, alpha)
	if err != nil {
		return nil, err
	}

	symbols := make([]byte, len(stripped))
	for i := 0; i < len(stripped); i++ {
		v, err := alpha.Value(stripped[i])
		if err != nil {
			return nil, err
		}
		symbols[i] = v
	}

	group := bitgroup.New(alpha.Width())
	out := make([]byte, 0, len(symbols)*alpha.Width()/8)

	for start := 0; start < len(symbols); start += group.SymbolLen {
		end := min(start+group.SymbolLen, len(symbols))

		decoded, err := group.Unpack(symbols[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
	}

	return out, nil
}

// encodedLen returns the exact output length for n input bytes: ceil(8n/w)
// meaningful symbols, rounded up to the pad group when padding applies.
func encodedLen(n int, alpha *alphabet.Alphabet) int {
	symbols := (n*8 + alpha.Width() - 1) / alpha.Width()
	if g := alpha.PadGroup(); g > 0 && symbols%g != 0 {
		symbols += g - symbols%g
	}

	return symbols
}
