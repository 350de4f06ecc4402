// Package puzzleserver serves generated puzzles and the score board over
// HTTP.
package puzzleserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/domino14/anagrid/config"
	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/pattern"
	"github.com/domino14/anagrid/internal/puzzle"
	"github.com/domino14/anagrid/internal/stores"
	"github.com/domino14/anagrid/internal/wordbank"
)

// TopScoresLimit is how many entries a score board shows.
const TopScoresLimit = 10

type Server struct {
	Config *config.Config
	// Store is optional; without it only puzzles are served.
	Store stores.Store
	Banks *wordbank.Registry
	// Auth wraps every handler that needs a logged in player.
	Auth func(http.Handler) http.Handler

	generating *semaphore.Weighted
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("gamenumber", func(fl validator.FieldLevel) bool {
		_, err := gamenumber.Decode(fl.Field().String())
		return err == nil
	})
}

func NewServer(cfg *config.Config, store stores.Store, banks *wordbank.Registry) *Server {
	return &Server{
		Config:     cfg,
		Store:      store,
		Banks:      banks,
		Auth:       JWTMiddleware([]byte(cfg.SecretKey)),
		generating: semaphore.NewWeighted(int64(max(cfg.MaxGenerations, 1))),
	}
}

// Routes returns the mux with every endpoint registered.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/puzzle", s.getPuzzle)
	mux.Handle("GET /txt", s.plainTextHandler())
	mux.Handle("GET /metrics", promhttp.Handler())
	if s.Store != nil {
		mux.HandleFunc("GET /api/scores", s.topScores)
		mux.Handle("POST /api/scores", s.Auth(http.HandlerFunc(s.addScore)))
		mux.Handle("GET /api/game", s.Auth(http.HandlerFunc(s.loadGame)))
		mux.Handle("PUT /api/game", s.Auth(http.HandlerFunc(s.saveGame)))
		mux.Handle("DELETE /api/game", s.Auth(http.HandlerFunc(s.deleteGame)))
	}
	return mux
}

func (s *Server) bank(language string) (*wordbank.WordBank, error) {
	if !gamenumber.ValidLanguage(language) {
		return nil, errBadRequest("unsupported language " + language)
	}
	return s.Banks.ForLanguage(s.Config.DataPath, language)
}

func (s *Server) generate(r *http.Request, params puzzle.Params) (*puzzle.Game, error) {
	bank, err := s.bank(params.Language)
	if err != nil {
		return nil, err
	}
	// Generation is CPU bound; queue requests beyond the limit.
	if err := s.generating.Acquire(r.Context(), 1); err != nil {
		return nil, err
	}
	defer s.generating.Release(1)
	return puzzle.Generate(r.Context(), bank, params, puzzle.Options{
		Timeout:     s.Config.GenerateTimeout,
		MaxRestarts: s.Config.MaxRestarts,
	})
}

type badRequest string

func (e badRequest) Error() string { return string(e) }

func errBadRequest(msg string) error { return badRequest(msg) }

func statusFor(err error) int {
	var br badRequest
	switch {
	case errors.As(err, &br), errors.Is(err, gamenumber.ErrInvalidGameNumber):
		return http.StatusBadRequest
	case errors.Is(err, stores.ErrNotFound), errors.Is(err, os.ErrNotExist),
		errors.Is(err, pattern.ErrNoWords):
		return http.StatusNotFound
	case errors.Is(err, puzzle.ErrTimedOut), errors.Is(err, pattern.ErrTooManyRestarts),
		errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Err(err).Msg("internal-error")
		msg = "internal error"
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("write-json")
	}
}
