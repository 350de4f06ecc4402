package puzzleserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/puzzle"
)

// Useful for chat bots

const (
	txtLimit = 375
)

func writeTextError(w http.ResponseWriter, err string) {
	w.WriteHeader(400)
	w.Write([]byte(err))
}

func (s *Server) plainTextHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, ok := r.URL.Query()["method"]
		if !ok || len(method[0]) < 1 {
			writeTextError(w, "method required")
			return
		}
		switch method[0] {
		case "puzzle":
			s.textPuzzle(w, r, false)
		case "solution":
			s.textPuzzle(w, r, true)
		case "scores":
			s.textScores(w, r)
		default:
			writeTextError(w, "method not found")
		}
	})
}

func (s *Server) textPuzzle(w http.ResponseWriter, r *http.Request, solved bool) {
	game, ok := r.URL.Query()["game"]
	if !ok || len(game[0]) < 1 {
		writeTextError(w, "game required")
		return
	}
	n, err := gamenumber.Decode(game[0])
	if err != nil {
		writeTextError(w, err.Error())
		return
	}
	g, err := s.generate(r, puzzle.FromNumber(n))
	if err != nil {
		w.WriteHeader(statusFor(err))
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s #%s: %d words of %d letters\n", g.Name, g.Number, g.Count, g.Length)
	w.Write([]byte(g.Board(solved)))
	w.Write([]byte("\n"))
}

func (s *Server) textScores(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeTextError(w, "no score board")
		return
	}
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		writeTextError(w, "count required")
		return
	}
	length, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil {
		writeTextError(w, "length required")
		return
	}
	scores, err := s.Store.TopScores(r.Context(), count, length, TopScoresLimit)
	if err != nil {
		writeTextError(w, err.Error())
		return
	}
	if len(scores) == 0 {
		w.Write([]byte("no scores yet"))
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("best times for %d words of %d letters: ", count, length))
	for i, sc := range scores {
		sb.WriteString(fmt.Sprintf("%d. %s %s ", i+1, sc.Username, formatSeconds(sc.Seconds)))
		if sb.Len() > txtLimit {
			sb.WriteString(" (...truncated)")
			break
		}
	}
	w.Write([]byte(strings.TrimSpace(sb.String())))
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
