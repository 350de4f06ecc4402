package pattern

import (
	"fmt"
	"strings"
)

// Variant names one of the six word layouts. The numeric values are part
// of the game number format and must not be reordered.
type Variant int

const (
	Chain Variant = iota
	Fence
	Rings
	Stairs
	Twisty
	Wave
)

type variantInfo struct {
	name          string
	steps         int
	minimumCount  int
	minimumLength int
}

// Rings needs six letters: with five the third ring's vertical word falls
// on the first ring's right-hand column, where only the first ring's own
// word fits.
var variants = [...]variantInfo{
	Chain:  {"Chain", 5, 5, MinimumLength},
	Fence:  {"Fence", 6, 6, MinimumLength},
	Rings:  {"Rings", 4, 4, MinimumLength + 1},
	Stairs: {"Stairs", 2, 2, MinimumLength},
	Twisty: {"Twisty", 2, 2, MinimumLength},
	Wave:   {"Wave", 4, 4, MinimumLength},
}

// Variants lists every layout in id order.
func Variants() []Variant {
	return []Variant{Chain, Fence, Rings, Stairs, Twisty, Wave}
}

func (v Variant) Valid() bool {
	return v >= Chain && v <= Wave
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variants[v].name
}

// Steps is the length of the variant's step cycle.
func (v Variant) Steps() int {
	if !v.Valid() {
		return 0
	}
	return variants[v].steps
}

// MinimumCount is the smallest number of words the variant will lay out.
func (v Variant) MinimumCount() int {
	if !v.Valid() {
		return 0
	}
	return variants[v].minimumCount
}

// MinimumLength is the shortest word length the variant can be built
// with for any word count.
func (v Variant) MinimumLength() int {
	if !v.Valid() {
		return MinimumLength
	}
	return variants[v].minimumLength
}

// ParseVariant accepts a layout name (case-insensitive) or its numeric id.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	for _, v := range Variants() {
		if strings.EqualFold(v.String(), s) || s == fmt.Sprint(int(v)) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q", s)
}
