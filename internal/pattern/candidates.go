package pattern

import (
	"github.com/domino14/anagrid/internal/common"
	"github.com/domino14/anagrid/internal/grid"
)

// wildcard marks a cell in a filter that no placed word covers yet.
const wildcard rune = 0

// filterAt reads the letters already on the board along the line a word of
// the current length would occupy from the cursor.
func (p *Pattern) filterAt(o grid.Orientation) []rune {
	filter := make([]rune, p.length+1)
	pos := p.cursor
	unit := o.Unit()
	for i := range filter {
		if r, ok := grid.At(p.solution, pos); ok {
			filter[i] = r
		} else {
			filter[i] = wildcard
		}
		pos = pos.Add(unit)
	}
	return filter
}

func matches(word string, filter []rune) bool {
	i := 0
	for _, r := range word {
		if i >= len(filter) {
			return false
		}
		if filter[i] != wildcard && filter[i] != r {
			return false
		}
		i++
	}
	return i == len(filter)
}

// candidates lists the dictionary words that agree with every letter in
// filter and are not an anagram of a word already placed.
func (p *Pattern) candidates(filter []rune) []string {
	var words []string
	for _, word := range p.bank.Bucket(len(filter)) {
		if !matches(word, filter) {
			continue
		}
		if _, used := p.used[common.MakeAlphagram(word)]; used {
			continue
		}
		words = append(words, word)
	}
	return words
}

// addRandomWord places a random legal word at the cursor. It returns nil
// if there is none.
func (p *Pattern) addRandomWord(o grid.Orientation) *grid.Word {
	words := p.candidates(p.filterAt(o))
	if len(words) == 0 {
		return nil
	}
	text := words[p.rng.IntN(len(words))]
	p.used[common.MakeAlphagram(text)] = struct{}{}
	return grid.NewWord(text, p.cursor, o)
}
