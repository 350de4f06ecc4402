package puzzleserver

import (
	"cmp"
	"math/rand/v2"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/grid"
	"github.com/domino14/anagrid/internal/pattern"
	"github.com/domino14/anagrid/internal/puzzle"
)

type tileJSON struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Letter string `json:"letter"`
}

type wordJSON struct {
	Word        string `json:"word"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Orientation string `json:"orientation"`
}

type puzzleResponse struct {
	Game   string     `json:"game"`
	Name   string     `json:"name"`
	Count  int        `json:"count"`
	Length int        `json:"length"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Tiles  []tileJSON `json:"tiles"`
	Words  []wordJSON `json:"words,omitempty"`
}

// paramsFromQuery reads either a game number or the individual generation
// parameters. Missing parameters get defaults and a random seed.
func paramsFromQuery(q url.Values, defaultLanguage string) (puzzle.Params, error) {
	if game := q.Get("game"); game != "" {
		n, err := gamenumber.Decode(game)
		if err != nil {
			return puzzle.Params{}, err
		}
		return puzzle.FromNumber(n), nil
	}

	params := puzzle.Params{
		Language: defaultLanguage,
		Length:   puzzle.DefaultLength,
		Seed:     rand.Uint64(),
	}
	var err error
	if v := q.Get("variant"); v != "" {
		if params.Variant, err = pattern.ParseVariant(v); err != nil {
			return puzzle.Params{}, errBadRequest(err.Error())
		}
	}
	if v := q.Get("tier"); v != "" {
		if params.Tier, err = gamenumber.ParseTier(v); err != nil {
			return puzzle.Params{}, errBadRequest(err.Error())
		}
	}
	if v := q.Get("length"); v != "" {
		if params.Length, err = strconv.Atoi(v); err != nil {
			return puzzle.Params{}, errBadRequest("length must be a number")
		}
	}
	if v := q.Get("seed"); v != "" {
		if params.Seed, err = strconv.ParseUint(v, 0, 64); err != nil {
			return puzzle.Params{}, errBadRequest("seed must be an unsigned number")
		}
	}
	if v := q.Get("language"); v != "" {
		params.Language = v
	}
	return params, nil
}

func tilesJSON(cells map[grid.Point]rune) []tileJSON {
	tiles := make([]tileJSON, 0, len(cells))
	for p, r := range cells {
		tiles = append(tiles, tileJSON{X: p.X, Y: p.Y, Letter: string(r)})
	}
	slices.SortFunc(tiles, func(a, b tileJSON) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return tiles
}

func newPuzzleResponse(g *puzzle.Game, solution bool) puzzleResponse {
	resp := puzzleResponse{
		Game:   g.Number,
		Name:   g.Name,
		Count:  g.Count,
		Length: g.Length,
		Width:  g.Size.Width,
		Height: g.Size.Height,
		Tiles:  tilesJSON(g.Tiles),
	}
	if solution {
		for _, w := range g.Words {
			o := w.Origin()
			resp.Words = append(resp.Words, wordJSON{
				Word:        w.Text(),
				X:           o.X,
				Y:           o.Y,
				Orientation: w.Orientation().String(),
			})
		}
	}
	return resp
}

func (s *Server) getPuzzle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := paramsFromQuery(q, s.Config.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := s.generate(r, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPuzzleResponse(g, q.Get("solution") == "1"))
}
