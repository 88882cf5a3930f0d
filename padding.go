package basen

import (
	"fmt"
	"strings"

	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/errs"
	"github.com/arloliu/basen/internal/pool"
)

// appendPadding pads buf with '=' up to a multiple of padGroup. A padGroup of
// zero means the alphabet is never padded.
func appendPadding(buf *pool.ByteBuffer, padGroup int) {
	if padGroup == 0 {
		return
	}
	for buf.Len()%padGroup != 0 {
		buf.WriteByte(alphabet.PadChar)
	}
}

// stripPadding validates and removes the trailing pad run from text.
//
// Canonical padding rules: once padding starts it must run uninterrupted to
// the end, the padded length must be a multiple of the alphabet's pad group,
// and the run must be shorter than one full group. Unpadded input passes
// through untouched; so does any input for unpadded alphabets, where '=' is
// simply not a valid character and fails later at table lookup.
func stripPadding(text string, alpha *alphabet.Alphabet) (string, error) {
	padGroup := alpha.PadGroup()
	if padGroup == 0 {
		return text, nil
	}

	idx := strings.IndexByte(text, alphabet.PadChar)
	if idx < 0 {
		return text, nil
	}

	run := text[idx:]
	for i := 0; i < len(run); i++ {
		if run[i] != alphabet.PadChar {
			return "", fmt.Errorf("%w: %q after padding", errs.ErrNotCanonicalInput, run[i])
		}
	}
	if len(text)%padGroup != 0 {
		return "", fmt.Errorf("%w: padded length %d is not a multiple of %d", errs.ErrNotCanonicalInput, len(text), padGroup)
	}
	if len(run) >= padGroup {
		return "", fmt.Errorf("%w: %d pad characters fill a whole group", errs.ErrNotCanonicalInput, len(run))
	}

	return text[:idx], nil
}
