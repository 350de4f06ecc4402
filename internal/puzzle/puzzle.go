// Package puzzle turns generation parameters into a playable game: a solved
// pattern plus the scrambled board handed to the player.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/grid"
	"github.com/domino14/anagrid/internal/pattern"
	"github.com/domino14/anagrid/internal/wordbank"
)

var ErrTimedOut = errors.New("generation timed out")

// DefaultLength is the word length used when none is asked for.
const DefaultLength = 6

type Params struct {
	Language string
	Variant  pattern.Variant
	Tier     gamenumber.Tier
	Length   int
	Seed     uint64
}

func FromNumber(n gamenumber.Number) Params {
	return Params{
		Language: n.Language,
		Variant:  n.Variant,
		Tier:     n.Tier,
		Length:   n.Length,
		Seed:     n.Seed,
	}
}

func (p Params) Number() gamenumber.Number {
	return gamenumber.Number{
		Version:  gamenumber.Version,
		Language: p.Language,
		Variant:  p.Variant,
		Tier:     p.Tier,
		Length:   p.Length,
		Seed:     p.Seed,
	}
}

// WordCount is the number of words a game with these parameters holds.
func (p Params) WordCount() int {
	pat := pattern.Create(p.Variant, nil)
	if pat == nil {
		return 0
	}
	pat.SetCount(p.Tier.Count())
	return pat.WordCount()
}

// Options bound how long Generate may search. Zero values mean no bound.
type Options struct {
	Timeout     time.Duration
	MaxRestarts int
}

type Game struct {
	Number string
	Params Params
	Name   string
	Count  int
	Length int
	Size   grid.Size
	// Words is the solution in placement order.
	Words []*grid.Word
	// Tiles is the scrambled board.
	Tiles map[grid.Point]rune
}

// Generate builds the game described by params. The length actually used
// may be smaller than requested if the dictionary has no longer words; the
// returned game number always reflects what was generated.
func Generate(ctx context.Context, bank *wordbank.WordBank, params Params, opts Options) (*Game, error) {
	if !params.Tier.Valid() {
		return nil, fmt.Errorf("%w: tier %d", gamenumber.ErrInvalidGameNumber, int(params.Tier))
	}
	p := pattern.Create(params.Variant, bank)
	if p == nil {
		return nil, fmt.Errorf("%w: variant %d", gamenumber.ErrInvalidGameNumber, int(params.Variant))
	}
	p.SetCount(params.Tier.Count())
	p.SetLength(params.Length)
	p.SetSeed(params.Seed)
	p.SetMaxRestarts(opts.MaxRestarts)
	params.Length = p.WordLength() + 1

	number, err := gamenumber.Encode(params.Number())
	if err != nil {
		return nil, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	job := pattern.Start(ctx, p)
	err = job.Wait()
	if errors.Is(err, pattern.ErrCancelled) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Info().Str("game", number).Int("restarts", p.Restarts()).Msg("generation-timed-out")
		err = fmt.Errorf("%w: game %s", ErrTimedOut, number)
	}
	variant := p.Name()
	generationsTotal.WithLabelValues(variant, resultLabel(err)).Inc()
	if err != nil {
		if errors.Is(err, ErrTimedOut) {
			return nil, err
		}
		return nil, fmt.Errorf("generating game %s: %w", number, err)
	}
	generationDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
	generationRestarts.WithLabelValues(variant).Observe(float64(p.Restarts()))

	g := &Game{
		Number: number,
		Params: params,
		Name:   p.Name(),
		Count:  p.WordCount(),
		Length: params.Length,
		Size:   p.Size(),
		Words:  p.Solution(),
	}
	g.Tiles = Scramble(g.Words, params.Seed)
	return g, nil
}

// Solution is the solved board as a cell map.
func (g *Game) Solution() map[grid.Point]rune {
	return grid.Letters(g.Words)
}

// Solved reports whether tiles matches the solution exactly.
func (g *Game) Solved(tiles map[grid.Point]rune) bool {
	return maps.Equal(tiles, g.Solution())
}

// Board draws the scrambled tiles, or the solution if solved is set.
func (g *Game) Board(solved bool) string {
	if solved {
		return grid.Repr(g.Solution(), g.Size)
	}
	return grid.Repr(g.Tiles, g.Size)
}
