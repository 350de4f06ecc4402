package puzzleserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/internal/auth"
	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/puzzle"
	"github.com/domino14/anagrid/internal/stores"
)

type scoreRequest struct {
	Game    string `json:"game" validate:"required,gamenumber"`
	Seconds int    `json:"seconds" validate:"gt=0"`
}

type gameRequest struct {
	Game      string `json:"game" validate:"required,gamenumber"`
	ElapsedMS int64  `json:"elapsed_ms" validate:"gte=0"`
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest("malformed request body")
	}
	if err := validate.Struct(v); err != nil {
		return errBadRequest(err.Error())
	}
	return nil
}

func authedUser(r *http.Request) (*auth.AuthedUser, error) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		return nil, errors.New("no user in authenticated request")
	}
	return user, nil
}

func (s *Server) addScore(w http.ResponseWriter, r *http.Request) {
	user, err := authedUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req scoreRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	n, err := gamenumber.Decode(req.Game)
	if err != nil {
		writeError(w, err)
		return
	}
	score := stores.Score{
		UserID:     user.DBID,
		Username:   user.Username,
		Seconds:    req.Seconds,
		Count:      puzzle.FromNumber(n).WordCount(),
		Length:     n.Length,
		GameNumber: req.Game,
		CreatedAt:  time.Now(),
	}
	if err := s.Store.AddScore(r.Context(), score); err != nil {
		writeError(w, err)
		return
	}
	log.Info().Str("user", user.Username).Str("game", req.Game).Int("seconds", req.Seconds).
		Msg("score-added")
	writeJSON(w, http.StatusCreated, score)
}

func (s *Server) topScores(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	count, err := strconv.Atoi(q.Get("count"))
	if err != nil {
		writeError(w, errBadRequest("count required"))
		return
	}
	length, err := strconv.Atoi(q.Get("length"))
	if err != nil {
		writeError(w, errBadRequest("length required"))
		return
	}
	scores, err := s.Store.TopScores(r.Context(), count, length, TopScoresLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	if scores == nil {
		scores = []stores.Score{}
	}
	writeJSON(w, http.StatusOK, scores)
}

func (s *Server) saveGame(w http.ResponseWriter, r *http.Request) {
	user, err := authedUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req gameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	n, err := gamenumber.Decode(req.Game)
	if err != nil {
		writeError(w, err)
		return
	}
	gs := stores.GameState{
		UserID:     user.DBID,
		GameNumber: req.Game,
		Count:      puzzle.FromNumber(n).WordCount(),
		Length:     n.Length,
		ElapsedMS:  req.ElapsedMS,
		Language:   n.Language,
		UpdatedAt:  time.Now(),
	}
	if err := s.Store.SaveGame(r.Context(), gs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gs)
}

func (s *Server) loadGame(w http.ResponseWriter, r *http.Request) {
	user, err := authedUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	gs, err := s.Store.LoadGame(r.Context(), user.DBID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gs)
}

func (s *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	user, err := authedUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.Store.DeleteGame(r.Context(), user.DBID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
