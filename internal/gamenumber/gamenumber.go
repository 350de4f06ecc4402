// Package gamenumber encodes every parameter of a generated game into a
// short string a player can share to replay the same board.
//
// The format is
//
//	<version><language><variant><tier><length-4><seed>
//
// where version is a single digit (currently 1), language is two lowercase
// letters, variant and tier are single digits, length-4 is two hex digits
// and seed is the generator seed in lowercase hex.
package gamenumber

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/anagrid/internal/pattern"
)

const Version = 1

var ErrInvalidGameNumber = errors.New("invalid game number")

type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierVeryHigh
)

var tierNames = map[Tier]string{
	TierLow:      "low",
	TierMedium:   "medium",
	TierHigh:     "high",
	TierVeryHigh: "very-high",
}

func (t Tier) Valid() bool {
	return t >= TierLow && t <= TierVeryHigh
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Count is the number of words asked of the pattern for this tier. The
// pattern rounds it to a whole number of step cycles.
func (t Tier) Count() int {
	return (int(t) + 1) * 10
}

// ParseTier accepts a tier name or its digit.
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range tierNames {
		if s == name || s == strconv.Itoa(int(t)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}

// Number holds the decoded fields of a game number.
type Number struct {
	Version  int
	Language string
	Variant  pattern.Variant
	Tier     Tier
	Length   int
	Seed     uint64
}

func (n Number) validate() error {
	switch {
	case n.Version < 0 || n.Version > 9:
		return fmt.Errorf("%w: version %d", ErrInvalidGameNumber, n.Version)
	case !ValidLanguage(n.Language):
		return fmt.Errorf("%w: language %q", ErrInvalidGameNumber, n.Language)
	case !n.Variant.Valid():
		return fmt.Errorf("%w: variant %d", ErrInvalidGameNumber, int(n.Variant))
	case !n.Tier.Valid():
		return fmt.Errorf("%w: tier %d", ErrInvalidGameNumber, int(n.Tier))
	case n.Length < n.Variant.MinimumLength() || n.Length-4 > 0xff:
		return fmt.Errorf("%w: length %d", ErrInvalidGameNumber, n.Length)
	}
	return nil
}

// Encode formats n. A zero Version is written as the current one.
func Encode(n Number) (string, error) {
	if n.Version == 0 {
		n.Version = Version
	}
	if err := n.validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d%s%d%d%02x%x", n.Version, n.Language, int(n.Variant),
		int(n.Tier), n.Length-4, n.Seed), nil
}

// String is Encode without the error, for numbers known to be valid.
func (n Number) String() string {
	s, err := Encode(n)
	if err != nil {
		return ""
	}
	return s
}

// Decode parses a game number produced by Encode.
func Decode(s string) (Number, error) {
	s = strings.TrimSpace(s)
	// version, language, variant, tier, length and at least one seed digit
	if len(s) < 8 {
		return Number{}, fmt.Errorf("%w: %q is too short", ErrInvalidGameNumber, s)
	}
	if len(s) > 7+16 {
		return Number{}, fmt.Errorf("%w: %q is too long", ErrInvalidGameNumber, s)
	}
	var n Number
	if s[0] < '0' || s[0] > '9' {
		return Number{}, fmt.Errorf("%w: bad version in %q", ErrInvalidGameNumber, s)
	}
	n.Version = int(s[0] - '0')
	if n.Version != Version {
		return Number{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidGameNumber, n.Version)
	}
	n.Language = s[1:3]
	variant, err := strconv.Atoi(s[3:4])
	if err != nil {
		return Number{}, fmt.Errorf("%w: bad variant in %q", ErrInvalidGameNumber, s)
	}
	n.Variant = pattern.Variant(variant)
	tier, err := strconv.Atoi(s[4:5])
	if err != nil {
		return Number{}, fmt.Errorf("%w: bad tier in %q", ErrInvalidGameNumber, s)
	}
	n.Tier = Tier(tier)
	length, err := strconv.ParseUint(s[5:7], 16, 8)
	if err != nil {
		return Number{}, fmt.Errorf("%w: bad length in %q", ErrInvalidGameNumber, s)
	}
	n.Length = int(length) + 4
	n.Seed, err = strconv.ParseUint(s[7:], 16, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: bad seed in %q", ErrInvalidGameNumber, s)
	}
	if err := n.validate(); err != nil {
		return Number{}, err
	}
	return n, nil
}

// ValidLanguage reports whether s is a two letter lowercase language code.
func ValidLanguage(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
