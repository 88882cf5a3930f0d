// Package bitgroup converts between 8-bit byte sequences and n-bit symbol
// sequences for arbitrary symbol widths in [1, 8].
//
// A Group captures the smallest span at which byte and symbol boundaries
// realign: lcm(8, n) bits, i.e. lcm(8,n)/8 bytes carrying lcm(8,n)/n symbols.
// Packing and unpacking both work on one such span at a time with a sliding
// bit cursor, so callers chunk longer inputs into consecutive groups (only
// the final group may be short).
//
// Unpack enforces the RFC 4648 canonical-encoding rule: any bits past the
// last fully-determined byte must be zero, otherwise the input does not
// correspond to the unique rendering of any byte sequence and is rejected.
package bitgroup

import (
	"fmt"

	"github.com/arloliu/basen/errs"
)

// Group describes one fully-aligned packing unit for a symbol bit width.
type Group struct {
	Width     int // symbol bit width n
	ByteLen   int // bytes per aligned group, lcm(8,n)/8
	SymbolLen int // symbols per aligned group, lcm(8,n)/n
}

// New computes the aligned group geometry for the given symbol bit width.
// The geometry is derived from lcm(8, width), never hardcoded per base.
func New(width int) Group {
	if width < 1 || width > 8 {
		panic(fmt.Sprintf("bitgroup: width %d out of range", width))
	}

	l := lcm(8, width)

	return Group{
		Width:     width,
		ByteLen:   l / 8,
		SymbolLen: l / width,
	}
}

// gcd computes the greatest common divisor using Euclid's algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm computes the least common multiple. a and b are small positive
// constants here, so overflow is not a concern.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// pow2 returns 2^x for small non-negative exponents.
func pow2(x int) int {
	return 1 << x
}

// mask returns the low-bit mask covering one symbol.
func (g Group) mask() byte {
	return byte(pow2(g.Width) - 1)
}

// Pack converts one group of bytes into n-bit symbol values.
//
// data may be shorter than ByteLen (the final group of a message); it is
// zero-extended internally so the carry arithmetic never special-cases the
// tail. Exactly ceil(8*len(data)/Width) symbols are returned: the symbols
// that carry input bits. Positions covered only by internal zero padding are
// discarded.
//
// Returns errs.ErrInvalidGroupSize when data exceeds ByteLen.
func (g Group) Pack(data []byte) ([]byte, error) {
	if len(data) > g.ByteLen {
		return nil, fmt.Errorf("%w: %d bytes, want at most %d", errs.ErrInvalidGroupSize, len(data), g.ByteLen)
	}

	var buf [8]byte // ByteLen never exceeds lcm(8,8)/8 with width in [1,8]
	copy(buf[:], data)

	count := (len(data)*8 + g.Width - 1) / g.Width
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		pos := i * g.Width
		idx := pos / 8
		avail := 8 - pos%8

		var v byte
		if avail >= g.Width {
			// The whole symbol sits inside the current byte.
			v = buf[idx] >> (avail - g.Width)
		} else {
			// The symbol straddles a byte boundary: take the low avail bits
			// of the current byte and carry the remainder from the next one.
			rest := g.Width - avail
			v = buf[idx]<<rest | buf[idx+1]>>(8-rest)
		}
		out[i] = v & g.mask()
	}

	return out, nil
}

// Unpack converts one group of n-bit symbol values back into bytes,
// rejecting non-canonical input.
//
// symbols may be shorter than SymbolLen; it is zero-extended internally,
// mirroring Pack. The output is the first floor(len(symbols)*Width/8) bytes,
// the ones fully determined by the input. Any bit the input contributes past
// that point must be zero; a non-zero leftover means the symbol sequence is
// not the canonical rendering of any byte sequence.
//
// Returns errs.ErrInvalidGroupSize when symbols exceeds SymbolLen,
// errs.ErrInvalidNTet when a symbol value does not fit in Width bits, and
// errs.ErrNotCanonicalInput on non-zero trailing bits.
func (g Group) Unpack(symbols []byte) ([]byte, error) {
	if len(symbols) > g.SymbolLen {
		return nil, fmt.Errorf("%w: %d symbols, want at most %d", errs.ErrInvalidGroupSize, len(symbols), g.SymbolLen)
	}

	buf := make([]byte, g.ByteLen)
	for i, s := range symbols {
		if s > g.mask() {
			return nil, fmt.Errorf("%w: value %d exceeds %d bits", errs.ErrInvalidNTet, s, g.Width)
		}

		pos := i * g.Width
		idx := pos / 8
		avail := 8 - pos%8

		if avail >= g.Width {
			buf[idx] |= s << (avail - g.Width)
		} else {
			rest := g.Width - avail
			buf[idx] |= s >> rest
			buf[idx+1] |= s << (8 - rest)
		}
	}

	// A trailing symbol whose bits lie entirely past the last determined byte
	// means the same bytes have a shorter rendering, so the input cannot be
	// canonical regardless of bit content.
	count := len(symbols) * g.Width / 8
	if len(symbols) > 0 && len(symbols)*g.Width-count*8 >= g.Width {
		return nil, fmt.Errorf("%w: %d symbols encode only %d bytes", errs.ErrNotCanonicalInput, len(symbols), count)
	}

	for _, b := range buf[count:] {
		if b != 0 {
			return nil, fmt.Errorf("%w: non-zero trailing bits", errs.ErrNotCanonicalInput)
		}
	}

	return buf[:count], nil
}
