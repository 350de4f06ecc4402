package common

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// MakeAlphagram returns the letters of word in sorted order. Two words are
// anagrams of each other exactly when their alphagrams are equal.
func MakeAlphagram(word string) string {
	letters := []rune(strings.ToUpper(word))
	slices.Sort(letters)
	return string(letters)
}

// RuneLen is the length of a word as the board sees it: one cell per rune.
func RuneLen(word string) int {
	return utf8.RuneCountInString(word)
}
