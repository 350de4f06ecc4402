// Package pattern lays words out on a grid following one of six layouts.
// A Pattern is configured with a word count, a word length and a seed and
// then Run, usually on its own goroutine through a Job. The same
// configuration and dictionary always produce the same solution.
package pattern

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/internal/grid"
	"github.com/domino14/anagrid/internal/wordbank"
)

var (
	ErrNoWords         = errors.New("dictionary has no words")
	ErrCancelled       = errors.New("generation cancelled")
	ErrTooManyRestarts = errors.New("could not generate a puzzle within the restart budget")
)

// MinimumLength is the shortest word length a pattern accepts.
const MinimumLength = wordbank.MinimumWordLength

type Pattern struct {
	variant Variant
	bank    *wordbank.WordBank

	count       int
	length      int
	seed        uint64
	maxRestarts int

	rng      *rand.Rand
	cursor   grid.Point
	solution []*grid.Word
	used     map[string]struct{}
	size     grid.Size
	restarts int

	mu        sync.Mutex
	cancelled bool
}

// Create returns a pattern for variant drawing words from bank, or nil if
// variant is not a known layout.
func Create(variant Variant, bank *wordbank.WordBank) *Pattern {
	if !variant.Valid() {
		return nil
	}
	p := &Pattern{
		variant: variant,
		bank:    bank,
		used:    make(map[string]struct{}),
	}
	p.SetCount(0)
	p.SetLength(0)
	return p
}

// SetCount sets how many words to lay out. The count is raised to the
// variant's minimum and then rounded down to end on a full step cycle.
func (p *Pattern) SetCount(count int) {
	minimum := p.variant.MinimumCount()
	p.count = max(count, minimum)
	p.count -= (p.count - minimum) % p.variant.Steps()
}

// SetLength sets the number of letters per word, clamped between the
// variant's minimum and what the dictionary can supply.
func (p *Pattern) SetLength(length int) {
	p.length = min(max(length, p.MinimumLength()), p.MaximumLength()) - 1
}

func (p *Pattern) SetSeed(seed uint64) {
	p.seed = seed
}

// SetMaxRestarts bounds how many times Run may throw away a partial
// solution and start over. Zero means no bound.
func (p *Pattern) SetMaxRestarts(n int) {
	p.maxRestarts = max(n, 0)
}

func (p *Pattern) MinimumLength() int {
	return p.variant.MinimumLength()
}

// MaximumLength is the longest word length the dictionary can supply, but
// never below the variant's minimum.
func (p *Pattern) MaximumLength() int {
	return max(p.bank.MaxLength(), p.MinimumLength())
}

func (p *Pattern) Variant() Variant { return p.variant }
func (p *Pattern) Name() string     { return p.variant.String() }
func (p *Pattern) WordCount() int   { return p.count }
func (p *Pattern) Seed() uint64     { return p.seed }
func (p *Pattern) Size() grid.Size  { return p.size }

// WordLength is one less than the number of letters in each word.
func (p *Pattern) WordLength() int { return p.length }

// Restarts is how many times the last Run started over.
func (p *Pattern) Restarts() int { return p.restarts }

// Solution returns the placed words in placement order. It is only
// meaningful after Run has returned nil.
func (p *Pattern) Solution() []*grid.Word {
	return p.solution
}

// Cancel asks a running Run to stop at its next check. It is safe to call
// from any goroutine. A cancelled pattern should be discarded.
func (p *Pattern) Cancel() {
	p.mu.Lock()
	p.cancelled = true
	p.mu.Unlock()
}

func (p *Pattern) isCancelled(ctx context.Context) bool {
	p.mu.Lock()
	cancelled := p.cancelled
	p.mu.Unlock()
	return cancelled || ctx.Err() != nil
}

// Run generates the solution. It returns nil only when every word has been
// placed and the grid shifted so its smallest coordinates are zero. When a
// step cannot place a word the whole partial solution is discarded and
// generation starts again from the first step.
func (p *Pattern) Run(ctx context.Context) error {
	defer timeTrack(time.Now(), "pattern-run")
	if p.bank.Len() == 0 {
		return ErrNoWords
	}

	p.rng = rand.New(rand.NewPCG(p.seed, 0))
	p.restarts = 0
	p.cleanUp()

	steps := p.variant.Steps()
	for i := 0; i < p.count; {
		if w := p.addWord(i % steps); w != nil {
			p.solution = append(p.solution, w)
			i++
		} else {
			p.cleanUp()
			i = 0
			p.restarts++
			log.Debug().Str("pattern", p.Name()).Int("restarts", p.restarts).Msg("pattern-restart")
		}

		if p.isCancelled(ctx) {
			return ErrCancelled
		}
		if p.maxRestarts > 0 && p.restarts >= p.maxRestarts {
			return ErrTooManyRestarts
		}
	}

	p.size = grid.Normalize(p.solution)
	log.Info().Str("pattern", p.Name()).Int("count", p.count).Int("length", p.length+1).
		Uint64("seed", p.seed).Int("restarts", p.restarts).
		Int("width", p.size.Width).Int("height", p.size.Height).Msg("pattern-generated")
	return nil
}

func (p *Pattern) cleanUp() {
	p.solution = nil
	clear(p.used)
	p.cursor = grid.Point{}
}

// addWord places the word for step i of the cycle, moving the cursor on
// success. It returns nil if no legal word exists.
func (p *Pattern) addWord(i int) *grid.Word {
	if p.variant == Twisty {
		return p.twistyStep(i)
	}
	o, next, ok := Step(p.variant, i, p.cursor, p.length)
	if !ok {
		return nil
	}
	w := p.addRandomWord(o)
	if w != nil {
		p.cursor = next
	}
	return w
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}
