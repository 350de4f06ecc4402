package puzzleserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/anagrid/config"
	"github.com/domino14/anagrid/internal/gamenumber"
	"github.com/domino14/anagrid/internal/pattern"
	"github.com/domino14/anagrid/internal/puzzle"
	"github.com/domino14/anagrid/internal/stores"
	"github.com/domino14/anagrid/internal/wordbank"
)

const testSecret = "sekrit"

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func writeWordFile(t *testing.T, dir string) {
	words := []string{""}
	for range 5 {
		var next []string
		for _, w := range words {
			for _, r := range "aeirst" {
				next = append(next, w+string(r))
			}
		}
		words = next
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(wordbank.Path(dir, "en"), []byte(strings.Join(words, "\n")), 0o644))
}

func newTestServer(t *testing.T) *httptest.Server {
	dir := t.TempDir()
	writeWordFile(t, dir)
	store, err := stores.NewSQLiteStore(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		DataPath:        dir,
		Language:        "en",
		SecretKey:       testSecret,
		GenerateTimeout: 30 * time.Second,
	}
	s := NewServer(cfg, store, wordbank.NewRegistry())
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func token(t *testing.T, claims jwt.MapClaims) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func cesarToken(t *testing.T) string {
	return token(t, jwt.MapClaims{"sub": "42", "iss": "aerolith.org", "usn": "cesar", "mbr": true})
}

func do(t *testing.T, method, url, tok string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestGetPuzzle(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "GET", ts.URL+"/api/puzzle?variant=wave&tier=low&length=5&seed=9&language=en", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decode[puzzleResponse](t, resp)
	assert.Equal(t, "Wave", p.Name)
	assert.Equal(t, 8, p.Count)
	assert.Equal(t, 5, p.Length)
	assert.Empty(t, p.Words)
	assert.NotEmpty(t, p.Tiles)

	n, err := gamenumber.Decode(p.Game)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), n.Seed)

	resp = do(t, "GET", ts.URL+"/api/puzzle?solution=1&game="+p.Game, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again := decode[puzzleResponse](t, resp)
	assert.Equal(t, p.Tiles, again.Tiles)
	assert.Len(t, again.Words, 8)

	resp = do(t, "GET", ts.URL+"/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body bytes.Buffer
	body.ReadFrom(resp.Body)
	assert.Contains(t, body.String(), `anagrid_generations_total{result="ok",variant="Wave"}`)
}

func TestBodyValidation(t *testing.T) {
	ts := newTestServer(t)
	tok := cesarToken(t)
	resp := do(t, "POST", ts.URL+"/api/scores", tok, scoreRequest{Game: "garbage", Seconds: 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, "PUT", ts.URL+"/api/game", tok, gameRequest{Game: "1en00019", ElapsedMS: -5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = do(t, "PUT", ts.URL+"/api/game", tok, "not an object")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{errBadRequest("nope"), http.StatusBadRequest},
		{fmt.Errorf("x: %w", gamenumber.ErrInvalidGameNumber), http.StatusBadRequest},
		{stores.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("open: %w", os.ErrNotExist), http.StatusNotFound},
		{fmt.Errorf("gen: %w", pattern.ErrNoWords), http.StatusNotFound},
		{puzzle.ErrTimedOut, http.StatusServiceUnavailable},
		{pattern.ErrTooManyRestarts, http.StatusServiceUnavailable},
		{context.Canceled, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, statusFor(c.err), c.err.Error())
	}
}

func TestGetPuzzleErrors(t *testing.T) {
	ts := newTestServer(t)
	cases := map[string]int{
		"/api/puzzle?game=nonsense":    http.StatusBadRequest,
		"/api/puzzle?variant=spiral":   http.StatusBadRequest,
		"/api/puzzle?length=five":      http.StatusBadRequest,
		"/api/puzzle?language=..":      http.StatusBadRequest,
		"/api/puzzle?language=xx":      http.StatusNotFound,
		"/api/puzzle?tier=4&length=5":  http.StatusBadRequest,
		"/api/puzzle?seed=-1&length=5": http.StatusBadRequest,
	}
	for path, code := range cases {
		resp := do(t, "GET", ts.URL+path, "", nil)
		assert.Equal(t, code, resp.StatusCode, path)
	}
}

func TestScores(t *testing.T) {
	ts := newTestServer(t)
	game := "1en00019"

	resp := do(t, "POST", ts.URL+"/api/scores", "", scoreRequest{Game: game, Seconds: 100})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	bad := token(t, jwt.MapClaims{"sub": "42", "iss": "example.com", "usn": "cesar"})
	resp = do(t, "POST", ts.URL+"/api/scores", bad, scoreRequest{Game: game, Seconds: 100})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	tok := cesarToken(t)
	resp = do(t, "POST", ts.URL+"/api/scores", tok, scoreRequest{Game: game, Seconds: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, "POST", ts.URL+"/api/scores", tok, scoreRequest{Game: game, Seconds: 100})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sc := decode[stores.Score](t, resp)
	assert.Equal(t, 10, sc.Count)
	assert.Equal(t, 5, sc.Length)
	assert.Equal(t, "cesar", sc.Username)

	resp = do(t, "GET", ts.URL+"/api/scores?count=10&length=5", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	top := decode[[]stores.Score](t, resp)
	require.Len(t, top, 1)
	assert.Equal(t, 42, top[0].UserID)

	resp = do(t, "GET", ts.URL+"/api/scores?count=40&length=5", "", nil)
	assert.Empty(t, decode[[]stores.Score](t, resp))
}

func TestSaveAndResumeGame(t *testing.T) {
	ts := newTestServer(t)
	tok := cesarToken(t)

	resp := do(t, "GET", ts.URL+"/api/game", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, "PUT", ts.URL+"/api/game", tok, gameRequest{Game: "1en31019", ElapsedMS: 4500})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, "GET", ts.URL+"/api/game", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	gs := decode[stores.GameState](t, resp)
	assert.Equal(t, "1en31019", gs.GameNumber)
	assert.Equal(t, int64(4500), gs.ElapsedMS)
	assert.Equal(t, 20, gs.Count)
	assert.Equal(t, "en", gs.Language)

	resp = do(t, "DELETE", ts.URL+"/api/game", tok, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, "GET", ts.URL+"/api/game", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlainText(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "GET", ts.URL+"/txt", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, "GET", ts.URL+"/txt?method=puzzle&game=1en30017", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body bytes.Buffer
	body.ReadFrom(resp.Body)
	lines := strings.Split(strings.TrimSpace(body.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Stairs #1en30017: 10 words of 5 letters"), lines[0])
	assert.Greater(t, len(lines), 1)

	resp = do(t, "GET", ts.URL+"/txt?method=scores&count=10&length=5", "", nil)
	body.Reset()
	body.ReadFrom(resp.Body)
	assert.Equal(t, "no scores yet", body.String())
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "1:05", formatSeconds(65))
	assert.Equal(t, "0:00", formatSeconds(0))
}
