// Package errs defines the sentinel errors returned by the basen codec and
// its companion packages.
//
// All errors are deterministic and non-retryable: decoding is a pure function
// of its input, so repeating a failed call never changes the outcome. Callers
// should match errors with errors.Is since call sites may wrap them with
// additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Alphabet table errors.
var (
	// ErrOutOfAlphabetCharacter indicates an input character that is not part
	// of the selected alphabet (and is not its pad character).
	ErrOutOfAlphabetCharacter = errors.New("character not in alphabet")

	// ErrNoCorrespondingCharacter indicates a symbol value outside the
	// alphabet's range on the encode side.
	ErrNoCorrespondingCharacter = errors.New("no corresponding alphabet character")

	// ErrUnknownAlphabet indicates an alphabet ID that is not registered.
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)

// Bit-group packing and unpacking errors.
var (
	// ErrInvalidGroupSize indicates a byte or symbol group that exceeds the
	// maximum length of one alignment unit.
	ErrInvalidGroupSize = errors.New("group exceeds alignment unit size")

	// ErrInvalidNTet indicates a symbol value that does not fit in the
	// alphabet's symbol bit width.
	ErrInvalidNTet = errors.New("symbol value exceeds bit width")

	// ErrNotCanonicalInput indicates input that is bit-decodable but is not
	// the unique RFC 4648 rendering of any byte sequence: interrupted or
	// malformed padding, or non-zero trailing bits past the final byte.
	ErrNotCanonicalInput = errors.New("input is not canonical")
)

// Armor format errors.
var (
	// ErrArmorTooShort indicates an armored payload too small to hold the
	// compression tag and checksum.
	ErrArmorTooShort = errors.New("armored payload too short")

	// ErrUnknownCompression indicates an unrecognized compression tag.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrChecksumMismatch indicates that the embedded checksum does not match
	// the recovered plaintext.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
