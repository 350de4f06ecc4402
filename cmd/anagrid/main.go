package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/config"
	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/pattern"
	"github.com/domino14/anagrid/internal/puzzle"
	"github.com/domino14/anagrid/internal/stores"
	"github.com/domino14/anagrid/internal/wordbank"
)

// localUser is the id saved games are stored under on the command line.
const localUser = 0

type cliConfig struct {
	config.Config

	variant     string
	tier        string
	length      int
	seed        uint64
	game        string
	solution    bool
	interactive bool
	resume      bool
	record      int
	username    string
	scores      bool

	// saved is the game loaded by -resume.
	saved *stores.GameState
}

func (c *cliConfig) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("anagrid", config.EnvPrefix, flag.ContinueOnError)
	c.AddFlags(fs)
	fs.StringVar(&c.variant, "variant", "chain", "layout: chain, fence, rings, stairs, twisty or wave")
	fs.StringVar(&c.tier, "tier", "low", "word count: low, medium, high or very-high")
	fs.IntVar(&c.length, "length", puzzle.DefaultLength, "letters per word")
	fs.Uint64Var(&c.seed, "seed", 0, "generator seed (0 picks one from the clock)")
	fs.StringVar(&c.game, "game", "", "replay this game number instead of the parameters above")
	fs.BoolVar(&c.solution, "solution", false, "print the solved grid and the word list")
	fs.BoolVar(&c.interactive, "interactive", false, "show progress while generating; q cancels")
	fs.BoolVar(&c.resume, "resume", false, "replay the game saved in db-path")
	fs.IntVar(&c.record, "record", 0, "record a finished time in seconds for this game")
	fs.StringVar(&c.username, "username", "player", "name recorded with -record")
	fs.BoolVar(&c.scores, "scores", false, "print the best times for this board size")
	return fs.Parse(args)
}

func (c *cliConfig) params(store stores.Store) (puzzle.Params, error) {
	if c.scores && store == nil {
		return puzzle.Params{}, errors.New("-scores needs -db-path")
	}
	game := c.game
	if c.resume {
		if store == nil {
			return puzzle.Params{}, errors.New("-resume needs -db-path")
		}
		gs, err := store.LoadGame(context.Background(), localUser)
		if err != nil {
			return puzzle.Params{}, fmt.Errorf("loading saved game: %w", err)
		}
		c.saved = &gs
		game = gs.GameNumber
	}
	if game != "" {
		n, err := gamenumber.Decode(game)
		if err != nil {
			return puzzle.Params{}, err
		}
		return puzzle.FromNumber(n), nil
	}

	variant, err := pattern.ParseVariant(c.variant)
	if err != nil {
		return puzzle.Params{}, err
	}
	tier, err := gamenumber.ParseTier(c.tier)
	if err != nil {
		return puzzle.Params{}, err
	}
	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return puzzle.Params{
		Language: c.Language,
		Variant:  variant,
		Tier:     tier,
		Length:   c.length,
		Seed:     seed,
	}, nil
}

func printGame(g *puzzle.Game, solution bool) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s #%s: %d words of %d letters", g.Name, g.Number, g.Count, g.Length)))
	fmt.Println()
	fmt.Print(renderBoard(g, false))
	if !solution {
		return
	}
	fmt.Println()
	fmt.Print(renderBoard(g, true))
	fmt.Println()
	for _, w := range g.Words {
		fmt.Printf("%-*s %v %s\n", g.Length, w.Text(), w.Origin(), w.Orientation())
	}
}

func printScores(ctx context.Context, store stores.Store, g *puzzle.Game) error {
	scores, err := store.TopScores(ctx, g.Count, g.Length, 10)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest times for %d words of %d letters:\n", g.Count, g.Length)
	if len(scores) == 0 {
		fmt.Println("  none yet")
	}
	for i, sc := range scores {
		fmt.Printf("%3d. %-16s %d:%02d  %s\n", i+1, sc.Username, sc.Seconds/60, sc.Seconds%60,
			sc.CreatedAt.Local().Format(time.DateOnly))
	}
	return nil
}

func run(cfg *cliConfig) error {
	var store stores.Store
	if cfg.DBPath != "" {
		s, err := stores.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	params, err := cfg.params(store)
	if err != nil {
		return err
	}
	bank, err := wordbank.Default.ForLanguage(cfg.DataPath, params.Language)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts := puzzle.Options{Timeout: cfg.GenerateTimeout, MaxRestarts: cfg.MaxRestarts}

	var g *puzzle.Game
	if cfg.interactive {
		g, err = generateWithProgress(ctx, bank, params, opts)
	} else {
		g, err = puzzle.Generate(ctx, bank, params, opts)
	}
	if err != nil {
		return err
	}
	printGame(g, cfg.solution)

	if store == nil {
		return nil
	}
	return cfg.finish(ctx, store, g)
}

// finish records a score for g or saves it for -resume, then prints the
// score board if asked.
func (c *cliConfig) finish(ctx context.Context, store stores.Store, g *puzzle.Game) error {
	if c.record > 0 {
		err := store.AddScore(ctx, stores.Score{
			UserID:     localUser,
			Username:   c.username,
			Seconds:    c.record,
			Count:      g.Count,
			Length:     g.Length,
			GameNumber: g.Number,
		})
		if err != nil {
			return err
		}
		// A finished game is no longer resumable.
		if err := store.DeleteGame(ctx, localUser); err != nil {
			return err
		}
	} else {
		var elapsed int64
		if c.saved != nil && c.saved.GameNumber == g.Number {
			elapsed = c.saved.ElapsedMS
		}
		err := store.SaveGame(ctx, stores.GameState{
			UserID:     localUser,
			GameNumber: g.Number,
			Count:      g.Count,
			Length:     g.Length,
			ElapsedMS:  elapsed,
			Language:   g.Params.Language,
		})
		if err != nil {
			return err
		}
	}
	if c.scores {
		return printScores(ctx, store, g)
	}
	return nil
}

func main() {
	cfg := &cliConfig{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("anagrid")
		os.Exit(1)
	}
}
