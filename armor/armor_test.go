package armor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arloliu/basen"
	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/compress"
	"github.com/arloliu/basen/errs"
	"github.com/stretchr/testify/require"
)

var testPayload = bytes.Repeat([]byte("metric.cpu.usage 42.5 1700000000\n"), 32)

func TestArmor_RoundTrip_Compressions(t *testing.T) {
	for _, typ := range []compress.Type{compress.None, compress.Zstd, compress.S2, compress.LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			ar, err := New(WithCompression(typ))
			require.NoError(t, err)

			text, err := ar.Armor(testPayload)
			require.NoError(t, err)

			got, err := ar.Dearmor(text)
			require.NoError(t, err)
			require.Equal(t, testPayload, got)
		})
	}
}

func TestArmor_RoundTrip_Alphabets(t *testing.T) {
	for _, id := range []alphabet.ID{alphabet.Base32, alphabet.Base64, alphabet.Base64URL, alphabet.Base16} {
		t.Run(id.String(), func(t *testing.T) {
			ar, err := New(WithAlphabet(id), WithCompression(compress.S2))
			require.NoError(t, err)

			text, err := ar.Armor(testPayload)
			require.NoError(t, err)

			got, err := ar.Dearmor(text)
			require.NoError(t, err)
			require.Equal(t, testPayload, got)
		})
	}
}

func TestArmor_EmptyPayload(t *testing.T) {
	ar, err := New(WithCompression(compress.None))
	require.NoError(t, err)

	text, err := ar.Armor(nil)
	require.NoError(t, err)

	got, err := ar.Dearmor(text)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestArmor_UnpaddedOutput(t *testing.T) {
	ar, err := New(WithPadding(false), WithCompression(compress.None))
	require.NoError(t, err)

	text, err := ar.Armor([]byte("x"))
	require.NoError(t, err)
	require.NotContains(t, text, "=")

	got, err := ar.Dearmor(text)
	require.NoError(t, err)
	require.Equal(t, []byte("x"), got)
}

func TestDearmor_CrossCompression(t *testing.T) {
	// The frame tag wins over the armorer's configured compression.
	producer, err := New(WithCompression(compress.LZ4))
	require.NoError(t, err)
	consumer, err := New(WithCompression(compress.Zstd))
	require.NoError(t, err)

	text, err := producer.Armor(testPayload)
	require.NoError(t, err)

	got, err := consumer.Dearmor(text)
	require.NoError(t, err)
	require.Equal(t, testPayload, got)
}

func TestDearmor_Tampered(t *testing.T) {
	ar, err := New(WithCompression(compress.None))
	require.NoError(t, err)

	text, err := ar.Armor(testPayload)
	require.NoError(t, err)

	// Flip one character of the payload region. With None compression the
	// plaintext survives decoding, so only the checksum can catch it.
	i := len(text) / 2
	replacement := byte('A')
	if text[i] == replacement {
		replacement = 'B'
	}
	tampered := text[:i] + string(replacement) + text[i+1:]

	_, err = ar.Dearmor(tampered)
	require.Error(t, err)
}

func TestDearmor_ChecksumMismatch(t *testing.T) {
	// Hand-build a frame whose checksum does not match its plaintext.
	frame := make([]byte, frameOverhead+3)
	frame[0] = byte(compress.None)
	// Checksum bytes left zero; xxHash64 of "abc" is certainly not zero.
	copy(frame[frameOverhead:], "abc")

	text, err := basen.Encode(frame, alphabet.Base64, true)
	require.NoError(t, err)

	ar, err := New()
	require.NoError(t, err)
	_, err = ar.Dearmor(text)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDearmor_TooShort(t *testing.T) {
	text, err := basen.Encode([]byte{byte(compress.None), 0x01}, alphabet.Base64, true)
	require.NoError(t, err)

	ar, err := New()
	require.NoError(t, err)
	_, err = ar.Dearmor(text)
	require.ErrorIs(t, err, errs.ErrArmorTooShort)
}

func TestDearmor_UnknownCompressionTag(t *testing.T) {
	frame := make([]byte, frameOverhead)
	frame[0] = 0x7f

	text, err := basen.Encode(frame, alphabet.Base64, true)
	require.NoError(t, err)

	ar, err := New()
	require.NoError(t, err)
	_, err = ar.Dearmor(text)
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestDearmor_BadText(t *testing.T) {
	ar, err := New()
	require.NoError(t, err)

	_, err = ar.Dearmor("not*base64*at*all")
	require.ErrorIs(t, err, errs.ErrOutOfAlphabetCharacter)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithAlphabet(alphabet.ID(0x99)))
	require.ErrorIs(t, err, errs.ErrUnknownAlphabet)

	_, err = New(WithCompression(compress.Type(0x7f)))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestArmor_TextIsCleanAlphabet(t *testing.T) {
	ar, err := New(WithAlphabet(alphabet.Base64URL), WithCompression(compress.S2))
	require.NoError(t, err)

	text, err := ar.Armor(testPayload)
	require.NoError(t, err)
	require.False(t, strings.ContainsAny(text, "+/"), "url-safe output must avoid std base64 specials")
}
