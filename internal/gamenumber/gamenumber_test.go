package gamenumber

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/anagrid/internal/pattern"
)

func TestEncode(t *testing.T) {
	s, err := Encode(Number{Language: "en", Variant: pattern.Twisty, Tier: TierHigh, Length: 7, Seed: 0xbeef})
	require.NoError(t, err)
	assert.Equal(t, "1en4203beef", s)

	s, err = Encode(Number{Version: 1, Language: "cs", Variant: pattern.Chain, Tier: TierLow, Length: 5})
	require.NoError(t, err)
	assert.Equal(t, "1cs00010", s)
}

func TestRoundTrip(t *testing.T) {
	nums := []Number{
		{Version: 1, Language: "en", Variant: pattern.Chain, Tier: TierLow, Length: 5, Seed: 0},
		{Version: 1, Language: "fr", Variant: pattern.Wave, Tier: TierVeryHigh, Length: 12, Seed: 42},
		{Version: 1, Language: "de", Variant: pattern.Rings, Tier: TierMedium, Length: 259, Seed: ^uint64(0)},
	}
	for _, n := range nums {
		s, err := Encode(n)
		require.NoError(t, err)
		back, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, n, back)
	}
}

func TestDecodeRejects(t *testing.T) {
	bad := []string{
		"",
		"1en0000",                  // no seed
		"2en00010",                 // unknown version
		"1EN00010",                 // language must be lowercase
		"1en60010",                 // variant out of range
		"1en04010",                 // tier out of range
		"1en000010",                // length 4
		"1en200110",                // rings needs six letters
		"1en00zz10",                // length not hex
		"1en0001xyz",               // seed not hex
		"1en00011ffffffffffffffff", // seed overflows
		"xen00010",
	}
	for _, s := range bad {
		_, err := Decode(s)
		assert.True(t, errors.Is(err, ErrInvalidGameNumber), "expected %q to be rejected", s)
	}
}

func TestEncodeRejects(t *testing.T) {
	_, err := Encode(Number{Language: "english", Variant: pattern.Chain, Length: 5})
	assert.ErrorIs(t, err, ErrInvalidGameNumber)
	_, err = Encode(Number{Language: "en", Variant: pattern.Variant(9), Length: 5})
	assert.ErrorIs(t, err, ErrInvalidGameNumber)
	_, err = Encode(Number{Language: "en", Variant: pattern.Chain, Length: 3})
	assert.ErrorIs(t, err, ErrInvalidGameNumber)
	_, err = Encode(Number{Language: "en", Variant: pattern.Rings, Length: 5})
	assert.ErrorIs(t, err, ErrInvalidGameNumber)
	s, err := Encode(Number{Language: "en", Variant: pattern.Rings, Length: 6})
	assert.NoError(t, err)
	assert.Equal(t, "1en20021", s)
}

func TestTiers(t *testing.T) {
	assert.Equal(t, 10, TierLow.Count())
	assert.Equal(t, 40, TierVeryHigh.Count())

	tier, err := ParseTier("Very-High")
	require.NoError(t, err)
	assert.Equal(t, TierVeryHigh, tier)
	tier, err = ParseTier("1")
	require.NoError(t, err)
	assert.Equal(t, TierMedium, tier)
	_, err = ParseTier("extreme")
	assert.Error(t, err)
}

func TestValidLanguage(t *testing.T) {
	assert.True(t, ValidLanguage("cs"))
	assert.False(t, ValidLanguage("c"))
	assert.False(t, ValidLanguage("En"))
	assert.False(t, ValidLanguage(".."))
}
