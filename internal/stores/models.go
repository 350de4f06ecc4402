package stores

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// GameState is a player's unfinished game. Only the game number is stored;
// the board is regenerated from it.
type GameState struct {
	UserID     int       `json:"user_id"`
	GameNumber string    `json:"game"`
	Count      int       `json:"count"`
	Length     int       `json:"length"`
	ElapsedMS  int64     `json:"elapsed_ms"`
	Language   string    `json:"language"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Score is one finished game. Scores are ranked per board size (word count
// and word length), fastest first.
type Score struct {
	UserID     int       `json:"user_id"`
	Username   string    `json:"username"`
	Seconds    int       `json:"seconds"`
	Count      int       `json:"count"`
	Length     int       `json:"length"`
	GameNumber string    `json:"game"`
	CreatedAt  time.Time `json:"created_at"`
}

type Store interface {
	SaveGame(ctx context.Context, gs GameState) error
	// LoadGame returns ErrNotFound if the user has no saved game.
	LoadGame(ctx context.Context, userID int) (GameState, error)
	DeleteGame(ctx context.Context, userID int) error
	AddScore(ctx context.Context, s Score) error
	TopScores(ctx context.Context, count, length, limit int) ([]Score, error)
	Close() error
}
