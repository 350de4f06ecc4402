package puzzle

import (
	"math/rand/v2"

	"github.com/domino14/anagrid/internal/grid"
)

// scrambleStream keeps the scramble independent of the stream the pattern
// used to pick words.
const scrambleStream = 1

// Scramble shuffles the letters of each word among the cells only that word
// covers. Cells where two words cross keep their letter, so every word
// still holds its own letters and the crossings give the player a start.
func Scramble(words []*grid.Word, seed uint64) map[grid.Point]rune {
	rng := rand.New(rand.NewPCG(seed, scrambleStream))
	tiles := grid.Letters(words)

	covered := make(map[grid.Point]int, len(tiles))
	for _, w := range words {
		for _, c := range w.Cells() {
			covered[c]++
		}
	}

	for _, w := range words {
		var free []grid.Point
		var letters []rune
		for i, c := range w.Cells() {
			if covered[c] == 1 {
				free = append(free, c)
				letters = append(letters, w.LetterAt(i))
			}
		}
		rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		for i, c := range free {
			tiles[c] = letters[i]
		}
	}
	return tiles
}
