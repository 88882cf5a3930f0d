// Package alphabet defines the character tables of the RFC 4648 encoding
// family supported by basen.
//
// An alphabet is an ordered, duplicate-free character set of size 2ⁿ for its
// symbol bit width n. Tables are built once at package initialization; both
// lookup directions are pure and allocation-free.
package alphabet

import (
	"fmt"

	"github.com/arloliu/basen/errs"
)

// ID identifies one of the supported alphabets.
type ID uint8

const (
	Octal       ID = 0x1 // Octal is the 3-bit base8 alphabet "01234567".
	Base16      ID = 0x2 // Base16 is the lowercase hexadecimal alphabet.
	Base16Upper ID = 0x3 // Base16Upper is the uppercase hexadecimal alphabet.
	Base32      ID = 0x4 // Base32 is the RFC 4648 base32 alphabet.
	Base32Hex   ID = 0x5 // Base32Hex is the RFC 4648 base32hex alphabet.
	Base64      ID = 0x6 // Base64 is the RFC 4648 base64 alphabet.
	Base64URL   ID = 0x7 // Base64URL is the URL-safe RFC 4648 base64 alphabet.
)

func (id ID) String() string {
	switch id {
	case Octal:
		return "Octal"
	case Base16:
		return "Base16"
	case Base16Upper:
		return "Base16Upper"
	case Base32:
		return "Base32"
	case Base32Hex:
		return "Base32Hex"
	case Base64:
		return "Base64"
	case Base64URL:
		return "Base64URL"
	default:
		return "Unknown"
	}
}

// PadChar is the filler character appended so encoded output length is a
// multiple of the alphabet's pad group size.
const PadChar = '='

// invalid marks an unmapped byte in the inverse lookup table.
const invalid = 0xff

// Alphabet maps symbol values to printable characters and back for a fixed
// ordered character set. Instances are immutable and safe for concurrent use.
type Alphabet struct {
	id       ID
	width    int        // symbol bit width n
	padGroup int        // encoded characters per padded group, 0 = unpadded
	chars    string     // value → character, length exactly 2^width
	values   [256]uint8 // character → value, invalid if unmapped
}

func newAlphabet(id ID, width, padGroup int, chars string) *Alphabet {
	if len(chars) != 1<<width {
		panic(fmt.Sprintf("alphabet %s: %d characters for width %d", id, len(chars), width))
	}

	a := &Alphabet{
		id:       id,
		width:    width,
		padGroup: padGroup,
		chars:    chars,
	}
	for i := range a.values {
		a.values[i] = invalid
	}
	for v := 0; v < len(chars); v++ {
		c := chars[v]
		if a.values[c] != invalid {
			panic(fmt.Sprintf("alphabet %s: duplicate character %q", id, c))
		}
		if c == PadChar {
			panic(fmt.Sprintf("alphabet %s: pad character in table", id))
		}
		a.values[c] = uint8(v)
	}

	return a
}

var registry = map[ID]*Alphabet{
	Octal:       newAlphabet(Octal, 3, 0, "01234567"),
	Base16:      newAlphabet(Base16, 4, 0, "0123456789abcdef"),
	Base16Upper: newAlphabet(Base16Upper, 4, 0, "0123456789ABCDEF"),
	Base32:      newAlphabet(Base32, 5, 8, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"),
	Base32Hex:   newAlphabet(Base32Hex, 5, 8, "0123456789ABCDEFGHIJKLMNOPQRSTUV"),
	Base64:      newAlphabet(Base64, 6, 4, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"),
	Base64URL:   newAlphabet(Base64URL, 6, 4, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"),
}

// Get returns the alphabet registered for id.
//
// Returns:
//   - *Alphabet: The immutable alphabet table.
//   - error: errs.ErrUnknownAlphabet if id is not registered.
func Get(id ID) (*Alphabet, error) {
	a, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownAlphabet, uint8(id))
	}

	return a, nil
}

// ID returns the identifier of the alphabet.
func (a *Alphabet) ID() ID { return a.id }

// Width returns the symbol bit width n. Every symbol value is in [0, 2ⁿ).
func (a *Alphabet) Width() int { return a.width }

// PadGroup returns the encoded group size that padded output must be a
// multiple of, or 0 when the alphabet is never padded.
func (a *Alphabet) PadGroup() int { return a.padGroup }

// Size returns the number of characters in the alphabet, 2^Width.
func (a *Alphabet) Size() int { return len(a.chars) }

func (a *Alphabet) String() string { return a.id.String() }

// Char returns the character assigned to symbol value v.
//
// Returns errs.ErrNoCorrespondingCharacter when v is outside [0, Size).
func (a *Alphabet) Char(v byte) (byte, error) {
	if int(v) >= len(a.chars) {
		return 0, fmt.Errorf("%w: value %d in %s", errs.ErrNoCorrespondingCharacter, v, a.id)
	}

	return a.chars[v], nil
}

// Value returns the symbol value assigned to character c.
//
// The pad character is never mapped; padding must be stripped before lookup.
// Returns errs.ErrOutOfAlphabetCharacter when c is unmapped.
func (a *Alphabet) Value(c byte) (byte, error) {
	v := a.values[c]
	if v == invalid {
		return 0, fmt.Errorf("%w: %q in %s", errs.ErrOutOfAlphabetCharacter, c, a.id)
	}

	return v, nil
}
