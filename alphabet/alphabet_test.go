package alphabet

import (
	"testing"

	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

func TestGet_AllRegistered(t *testing.T) {
	tests := []struct {
		id       ID
		width    int
		padGroup int
	}{
		{Octal, 3, 0},
		{Base16, 4, 0},
		{Base16Upper, 4, 0},
		{Base32, 5, 8},
		{Base32Hex, 5, 8},
		{Base64, 6, 4},
		{Base64URL, 6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			a, err := Get(tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.id, a.ID())
			require.Equal(t, tt.width, a.Width())
			require.Equal(t, tt.padGroup, a.PadGroup())
			require.Equal(t, 1<<tt.width, a.Size())
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get(ID(0x99))
	require.ErrorIs(t, err, errs.ErrUnknownAlphabet)

	_, err = Get(ID(0))
	require.ErrorIs(t, err, errs.ErrUnknownAlphabet)
}

func TestAlphabet_CharValueRoundTrip(t *testing.T) {
	for id := range registry {
		a, err := Get(id)
		require.NoError(t, err)

		seen := make(map[byte]bool)
		for v := 0; v < a.Size(); v++ {
			c, err := a.Char(byte(v))
			require.NoError(t, err)
			require.False(t, seen[c], "%s: duplicate character %q", id, c)
			seen[c] = true

			back, err := a.Value(c)
			require.NoError(t, err)
			require.Equal(t, byte(v), back)
		}
	}
}

func TestAlphabet_CharOutOfRange(t *testing.T) {
	a, err := Get(Base64)
	require.NoError(t, err)

	_, err = a.Char(64)
	require.ErrorIs(t, err, errs.ErrNoCorrespondingCharacter)

	_, err = a.Char(255)
	require.ErrorIs(t, err, errs.ErrNoCorrespondingCharacter)
}

func TestAlphabet_ValueUnmapped(t *testing.T) {
	a, err := Get(Base64)
	require.NoError(t, err)

	// The pad character is never part of the value table.
	_, err = a.Value(PadChar)
	require.ErrorIs(t, err, errs.ErrOutOfAlphabetCharacter)

	_, err = a.Value('!')
	require.ErrorIs(t, err, errs.ErrOutOfAlphabetCharacter)
}

func TestAlphabet_CaseIsolation(t *testing.T) {
	lower, err := Get(Base16)
	require.NoError(t, err)
	upper, err := Get(Base16Upper)
	require.NoError(t, err)

	// 'f' belongs to the lowercase table only, 'F' to the uppercase one.
	_, err = lower.Value('F')
	require.ErrorIs(t, err, errs.ErrOutOfAlphabetCharacter)
	_, err = upper.Value('f')
	require.ErrorIs(t, err, errs.ErrOutOfAlphabetCharacter)

	v, err := lower.Value('f')
	require.NoError(t, err)
	require.Equal(t, byte(15), v)

	v, err = upper.Value('F')
	require.NoError(t, err)
	require.Equal(t, byte(15), v)
}

func TestID_String(t *testing.T) {
	require.Equal(t, "Base64URL", Base64URL.String())
	require.Equal(t, "Octal", Octal.String())
	require.Equal(t, "Unknown", ID(0xee).String())
}
