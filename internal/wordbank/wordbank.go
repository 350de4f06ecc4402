// Package wordbank holds the dictionaries the pattern engine draws words
// from. A WordBank is built once and never mutated afterwards, so a single
// instance can be shared by any number of concurrent generators.
package wordbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/internal/common"
)

// MinimumWordLength is the shortest word a dictionary can contribute. Any
// shorter line in a word file is skipped.
const MinimumWordLength = 5

type WordBank struct {
	buckets   map[int][]string
	maxLength int
	count     int
}

// Parse reads a word list, one word per line. Anything after the first
// field on a line (a definition, say) is ignored.
func Parse(r io.Reader) (*WordBank, error) {
	wb := &WordBank{buckets: make(map[int][]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := fields[0]
		length := common.RuneLen(word)
		if length < MinimumWordLength {
			continue
		}
		wb.buckets[length] = append(wb.buckets[length], strings.ToUpper(word))
		wb.maxLength = max(wb.maxLength, length)
		wb.count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return wb, nil
}

// Load opens and parses the word file at path.
func Load(path string) (*WordBank, error) {
	defer timeTrack(time.Now(), "load "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	wb, err := Parse(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", wb.count).Int("max-length", wb.maxLength).
		Msg("wordbank-loaded")
	return wb, nil
}

// FromWords builds a bank from an in-memory list using the same rules as
// Parse.
func FromWords(words []string) *WordBank {
	wb, _ := Parse(strings.NewReader(strings.Join(words, "\n")))
	return wb
}

// Bucket returns every word with exactly length letters, in file order.
// The returned slice must not be modified.
func (wb *WordBank) Bucket(length int) []string {
	if wb == nil {
		return nil
	}
	return wb.buckets[length]
}

// MaxLength is the length of the longest word in the bank.
func (wb *WordBank) MaxLength() int {
	if wb == nil {
		return 0
	}
	return wb.maxLength
}

// Len is the total number of words in the bank.
func (wb *WordBank) Len() int {
	if wb == nil {
		return 0
	}
	return wb.count
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}
